// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: parser/v1/parser.proto

package parserv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type ParseNotificationRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RawText       string                 `protobuf:"bytes,1,opt,name=raw_text,json=rawText,proto3" json:"raw_text,omitempty"`
	JobId         string                 `protobuf:"bytes,2,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	SourceId      string                 `protobuf:"bytes,3,opt,name=source_id,json=sourceId,proto3" json:"source_id,omitempty"`
	Category      string                 `protobuf:"bytes,4,opt,name=category,proto3" json:"category,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParseNotificationRequest) Reset() {
	*x = ParseNotificationRequest{}
	mi := &file_parser_v1_parser_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseNotificationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseNotificationRequest) ProtoMessage() {}

func (x *ParseNotificationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_parser_v1_parser_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseNotificationRequest.ProtoReflect.Descriptor instead.
func (*ParseNotificationRequest) Descriptor() ([]byte, []int) {
	return file_parser_v1_parser_proto_rawDescGZIP(), []int{0}
}

func (x *ParseNotificationRequest) GetRawText() string {
	if x != nil {
		return x.RawText
	}
	return ""
}

func (x *ParseNotificationRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *ParseNotificationRequest) GetSourceId() string {
	if x != nil {
		return x.SourceId
	}
	return ""
}

func (x *ParseNotificationRequest) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

type ParseNotificationResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Run   *ParseRun              `protobuf:"bytes,1,opt,name=run,proto3" json:"run,omitempty"`
	// Canonical structured job record as JSON; empty when the run failed.
	ResultJson       string     `protobuf:"bytes,2,opt,name=result_json,json=resultJson,proto3" json:"result_json,omitempty"`
	Posts            []*JobPost `protobuf:"bytes,3,rep,name=posts,proto3" json:"posts,omitempty"`
	ValidationErrors []string   `protobuf:"bytes,4,rep,name=validation_errors,json=validationErrors,proto3" json:"validation_errors,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *ParseNotificationResponse) Reset() {
	*x = ParseNotificationResponse{}
	mi := &file_parser_v1_parser_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseNotificationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseNotificationResponse) ProtoMessage() {}

func (x *ParseNotificationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_parser_v1_parser_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseNotificationResponse.ProtoReflect.Descriptor instead.
func (*ParseNotificationResponse) Descriptor() ([]byte, []int) {
	return file_parser_v1_parser_proto_rawDescGZIP(), []int{1}
}

func (x *ParseNotificationResponse) GetRun() *ParseRun {
	if x != nil {
		return x.Run
	}
	return nil
}

func (x *ParseNotificationResponse) GetResultJson() string {
	if x != nil {
		return x.ResultJson
	}
	return ""
}

func (x *ParseNotificationResponse) GetPosts() []*JobPost {
	if x != nil {
		return x.Posts
	}
	return nil
}

func (x *ParseNotificationResponse) GetValidationErrors() []string {
	if x != nil {
		return x.ValidationErrors
	}
	return nil
}

type EnqueueParseRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RawText       string                 `protobuf:"bytes,1,opt,name=raw_text,json=rawText,proto3" json:"raw_text,omitempty"`
	JobId         string                 `protobuf:"bytes,2,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	SourceId      string                 `protobuf:"bytes,3,opt,name=source_id,json=sourceId,proto3" json:"source_id,omitempty"`
	Category      string                 `protobuf:"bytes,4,opt,name=category,proto3" json:"category,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EnqueueParseRequest) Reset() {
	*x = EnqueueParseRequest{}
	mi := &file_parser_v1_parser_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EnqueueParseRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EnqueueParseRequest) ProtoMessage() {}

func (x *EnqueueParseRequest) ProtoReflect() protoreflect.Message {
	mi := &file_parser_v1_parser_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EnqueueParseRequest.ProtoReflect.Descriptor instead.
func (*EnqueueParseRequest) Descriptor() ([]byte, []int) {
	return file_parser_v1_parser_proto_rawDescGZIP(), []int{2}
}

func (x *EnqueueParseRequest) GetRawText() string {
	if x != nil {
		return x.RawText
	}
	return ""
}

func (x *EnqueueParseRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *EnqueueParseRequest) GetSourceId() string {
	if x != nil {
		return x.SourceId
	}
	return ""
}

func (x *EnqueueParseRequest) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

type EnqueueParseResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Accepted      bool                   `protobuf:"varint,1,opt,name=accepted,proto3" json:"accepted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EnqueueParseResponse) Reset() {
	*x = EnqueueParseResponse{}
	mi := &file_parser_v1_parser_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EnqueueParseResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EnqueueParseResponse) ProtoMessage() {}

func (x *EnqueueParseResponse) ProtoReflect() protoreflect.Message {
	mi := &file_parser_v1_parser_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EnqueueParseResponse.ProtoReflect.Descriptor instead.
func (*EnqueueParseResponse) Descriptor() ([]byte, []int) {
	return file_parser_v1_parser_proto_rawDescGZIP(), []int{3}
}

func (x *EnqueueParseResponse) GetAccepted() bool {
	if x != nil {
		return x.Accepted
	}
	return false
}

type GetParseRunRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RunId         string                 `protobuf:"bytes,1,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetParseRunRequest) Reset() {
	*x = GetParseRunRequest{}
	mi := &file_parser_v1_parser_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetParseRunRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetParseRunRequest) ProtoMessage() {}

func (x *GetParseRunRequest) ProtoReflect() protoreflect.Message {
	mi := &file_parser_v1_parser_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetParseRunRequest.ProtoReflect.Descriptor instead.
func (*GetParseRunRequest) Descriptor() ([]byte, []int) {
	return file_parser_v1_parser_proto_rawDescGZIP(), []int{4}
}

func (x *GetParseRunRequest) GetRunId() string {
	if x != nil {
		return x.RunId
	}
	return ""
}

type GetParseRunResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Run           *ParseRun              `protobuf:"bytes,1,opt,name=run,proto3" json:"run,omitempty"`
	ResultJson    string                 `protobuf:"bytes,2,opt,name=result_json,json=resultJson,proto3" json:"result_json,omitempty"`
	Posts         []*JobPost             `protobuf:"bytes,3,rep,name=posts,proto3" json:"posts,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetParseRunResponse) Reset() {
	*x = GetParseRunResponse{}
	mi := &file_parser_v1_parser_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetParseRunResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetParseRunResponse) ProtoMessage() {}

func (x *GetParseRunResponse) ProtoReflect() protoreflect.Message {
	mi := &file_parser_v1_parser_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetParseRunResponse.ProtoReflect.Descriptor instead.
func (*GetParseRunResponse) Descriptor() ([]byte, []int) {
	return file_parser_v1_parser_proto_rawDescGZIP(), []int{5}
}

func (x *GetParseRunResponse) GetRun() *ParseRun {
	if x != nil {
		return x.Run
	}
	return nil
}

func (x *GetParseRunResponse) GetResultJson() string {
	if x != nil {
		return x.ResultJson
	}
	return ""
}

func (x *GetParseRunResponse) GetPosts() []*JobPost {
	if x != nil {
		return x.Posts
	}
	return nil
}

type ListParseRunsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SourceId      string                 `protobuf:"bytes,1,opt,name=source_id,json=sourceId,proto3" json:"source_id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	Limit         int32                  `protobuf:"varint,3,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListParseRunsRequest) Reset() {
	*x = ListParseRunsRequest{}
	mi := &file_parser_v1_parser_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListParseRunsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListParseRunsRequest) ProtoMessage() {}

func (x *ListParseRunsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_parser_v1_parser_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListParseRunsRequest.ProtoReflect.Descriptor instead.
func (*ListParseRunsRequest) Descriptor() ([]byte, []int) {
	return file_parser_v1_parser_proto_rawDescGZIP(), []int{6}
}

func (x *ListParseRunsRequest) GetSourceId() string {
	if x != nil {
		return x.SourceId
	}
	return ""
}

func (x *ListParseRunsRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ListParseRunsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListParseRunsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Runs          []*ParseRun            `protobuf:"bytes,1,rep,name=runs,proto3" json:"runs,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListParseRunsResponse) Reset() {
	*x = ListParseRunsResponse{}
	mi := &file_parser_v1_parser_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListParseRunsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListParseRunsResponse) ProtoMessage() {}

func (x *ListParseRunsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_parser_v1_parser_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListParseRunsResponse.ProtoReflect.Descriptor instead.
func (*ListParseRunsResponse) Descriptor() ([]byte, []int) {
	return file_parser_v1_parser_proto_rawDescGZIP(), []int{7}
}

func (x *ListParseRunsResponse) GetRuns() []*ParseRun {
	if x != nil {
		return x.Runs
	}
	return nil
}

type ParseRun struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RunId         string                 `protobuf:"bytes,1,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	JobId         string                 `protobuf:"bytes,2,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	SourceId      string                 `protobuf:"bytes,3,opt,name=source_id,json=sourceId,proto3" json:"source_id,omitempty"`
	Category      string                 `protobuf:"bytes,4,opt,name=category,proto3" json:"category,omitempty"`
	Status        string                 `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"`
	ErrorKind     string                 `protobuf:"bytes,6,opt,name=error_kind,json=errorKind,proto3" json:"error_kind,omitempty"`
	ErrorMessage  string                 `protobuf:"bytes,7,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	DurationMs    int64                  `protobuf:"varint,8,opt,name=duration_ms,json=durationMs,proto3" json:"duration_ms,omitempty"`
	TokensUsed    int32                  `protobuf:"varint,9,opt,name=tokens_used,json=tokensUsed,proto3" json:"tokens_used,omitempty"`
	Attempts      int32                  `protobuf:"varint,10,opt,name=attempts,proto3" json:"attempts,omitempty"`
	Chunks        int32                  `protobuf:"varint,11,opt,name=chunks,proto3" json:"chunks,omitempty"`
	IsCorrigendum bool                   `protobuf:"varint,12,opt,name=is_corrigendum,json=isCorrigendum,proto3" json:"is_corrigendum,omitempty"`
	NeedsReview   bool                   `protobuf:"varint,13,opt,name=needs_review,json=needsReview,proto3" json:"needs_review,omitempty"`
	ModelName     string                 `protobuf:"bytes,14,opt,name=model_name,json=modelName,proto3" json:"model_name,omitempty"`
	Summary       string                 `protobuf:"bytes,15,opt,name=summary,proto3" json:"summary,omitempty"`
	StartedAt     string                 `protobuf:"bytes,16,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	FinishedAt    string                 `protobuf:"bytes,17,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParseRun) Reset() {
	*x = ParseRun{}
	mi := &file_parser_v1_parser_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseRun) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseRun) ProtoMessage() {}

func (x *ParseRun) ProtoReflect() protoreflect.Message {
	mi := &file_parser_v1_parser_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseRun.ProtoReflect.Descriptor instead.
func (*ParseRun) Descriptor() ([]byte, []int) {
	return file_parser_v1_parser_proto_rawDescGZIP(), []int{8}
}

func (x *ParseRun) GetRunId() string {
	if x != nil {
		return x.RunId
	}
	return ""
}

func (x *ParseRun) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *ParseRun) GetSourceId() string {
	if x != nil {
		return x.SourceId
	}
	return ""
}

func (x *ParseRun) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *ParseRun) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ParseRun) GetErrorKind() string {
	if x != nil {
		return x.ErrorKind
	}
	return ""
}

func (x *ParseRun) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *ParseRun) GetDurationMs() int64 {
	if x != nil {
		return x.DurationMs
	}
	return 0
}

func (x *ParseRun) GetTokensUsed() int32 {
	if x != nil {
		return x.TokensUsed
	}
	return 0
}

func (x *ParseRun) GetAttempts() int32 {
	if x != nil {
		return x.Attempts
	}
	return 0
}

func (x *ParseRun) GetChunks() int32 {
	if x != nil {
		return x.Chunks
	}
	return 0
}

func (x *ParseRun) GetIsCorrigendum() bool {
	if x != nil {
		return x.IsCorrigendum
	}
	return false
}

func (x *ParseRun) GetNeedsReview() bool {
	if x != nil {
		return x.NeedsReview
	}
	return false
}

func (x *ParseRun) GetModelName() string {
	if x != nil {
		return x.ModelName
	}
	return ""
}

func (x *ParseRun) GetSummary() string {
	if x != nil {
		return x.Summary
	}
	return ""
}

func (x *ParseRun) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

func (x *ParseRun) GetFinishedAt() string {
	if x != nil {
		return x.FinishedAt
	}
	return ""
}

type JobPost struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PostName      string                 `protobuf:"bytes,1,opt,name=post_name,json=postName,proto3" json:"post_name,omitempty"`
	Vacancies     int32                  `protobuf:"varint,2,opt,name=vacancies,proto3" json:"vacancies,omitempty"`
	Eligibility   string                 `protobuf:"bytes,3,opt,name=eligibility,proto3" json:"eligibility,omitempty"`
	PayLevel      string                 `protobuf:"bytes,4,opt,name=pay_level,json=payLevel,proto3" json:"pay_level,omitempty"`
	AgeLimit      string                 `protobuf:"bytes,5,opt,name=age_limit,json=ageLimit,proto3" json:"age_limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *JobPost) Reset() {
	*x = JobPost{}
	mi := &file_parser_v1_parser_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *JobPost) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*JobPost) ProtoMessage() {}

func (x *JobPost) ProtoReflect() protoreflect.Message {
	mi := &file_parser_v1_parser_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use JobPost.ProtoReflect.Descriptor instead.
func (*JobPost) Descriptor() ([]byte, []int) {
	return file_parser_v1_parser_proto_rawDescGZIP(), []int{9}
}

func (x *JobPost) GetPostName() string {
	if x != nil {
		return x.PostName
	}
	return ""
}

func (x *JobPost) GetVacancies() int32 {
	if x != nil {
		return x.Vacancies
	}
	return 0
}

func (x *JobPost) GetEligibility() string {
	if x != nil {
		return x.Eligibility
	}
	return ""
}

func (x *JobPost) GetPayLevel() string {
	if x != nil {
		return x.PayLevel
	}
	return ""
}

func (x *JobPost) GetAgeLimit() string {
	if x != nil {
		return x.AgeLimit
	}
	return ""
}

var File_parser_v1_parser_proto protoreflect.FileDescriptor

const file_parser_v1_parser_proto_rawDesc = "" +
	"\n" +
	"\x16parser/v1/parser.proto\x12\tparser.v1\"\x85\x01\n" +
	"\x18ParseNotificationRequest\x12\x19\n" +
	"\braw_text\x18\x01 \x01(\tR\arawText\x12\x15\n" +
	"\x06job_id\x18\x02 \x01(\tR\x05jobId\x12\x1b\n" +
	"\tsource_id\x18\x03 \x01(\tR\bsourceId\x12\x1a\n" +
	"\bcategory\x18\x04 \x01(\tR\bcategory\"\xba\x01\n" +
	"\x19ParseNotificationResponse\x12%\n" +
	"\x03run\x18\x01 \x01(\v2\x13.parser.v1.ParseRunR\x03run\x12\x1f\n" +
	"\vresult_json\x18\x02 \x01(\tR\n" +
	"resultJson\x12(\n" +
	"\x05posts\x18\x03 \x03(\v2\x12.parser.v1.JobPostR\x05posts\x12+\n" +
	"\x11validation_errors\x18\x04 \x03(\tR\x10validationErrors\"\x80\x01\n" +
	"\x13EnqueueParseRequest\x12\x19\n" +
	"\braw_text\x18\x01 \x01(\tR\arawText\x12\x15\n" +
	"\x06job_id\x18\x02 \x01(\tR\x05jobId\x12\x1b\n" +
	"\tsource_id\x18\x03 \x01(\tR\bsourceId\x12\x1a\n" +
	"\bcategory\x18\x04 \x01(\tR\bcategory\"2\n" +
	"\x14EnqueueParseResponse\x12\x1a\n" +
	"\baccepted\x18\x01 \x01(\bR\baccepted\"+\n" +
	"\x12GetParseRunRequest\x12\x15\n" +
	"\x06run_id\x18\x01 \x01(\tR\x05runId\"\x87\x01\n" +
	"\x13GetParseRunResponse\x12%\n" +
	"\x03run\x18\x01 \x01(\v2\x13.parser.v1.ParseRunR\x03run\x12\x1f\n" +
	"\vresult_json\x18\x02 \x01(\tR\n" +
	"resultJson\x12(\n" +
	"\x05posts\x18\x03 \x03(\v2\x12.parser.v1.JobPostR\x05posts\"a\n" +
	"\x14ListParseRunsRequest\x12\x1b\n" +
	"\tsource_id\x18\x01 \x01(\tR\bsourceId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12\x14\n" +
	"\x05limit\x18\x03 \x01(\x05R\x05limit\"@\n" +
	"\x15ListParseRunsResponse\x12'\n" +
	"\x04runs\x18\x01 \x03(\v2\x13.parser.v1.ParseRunR\x04runs\"\x86\x04\n" +
	"\bParseRun\x12\x15\n" +
	"\x06run_id\x18\x01 \x01(\tR\x05runId\x12\x15\n" +
	"\x06job_id\x18\x02 \x01(\tR\x05jobId\x12\x1b\n" +
	"\tsource_id\x18\x03 \x01(\tR\bsourceId\x12\x1a\n" +
	"\bcategory\x18\x04 \x01(\tR\bcategory\x12\x16\n" +
	"\x06status\x18\x05 \x01(\tR\x06status\x12\x1d\n" +
	"\n" +
	"error_kind\x18\x06 \x01(\tR\terrorKind\x12#\n" +
	"\rerror_message\x18\a \x01(\tR\ferrorMessage\x12\x1f\n" +
	"\vduration_ms\x18\b \x01(\x03R\n" +
	"durationMs\x12\x1f\n" +
	"\vtokens_used\x18\t \x01(\x05R\n" +
	"tokensUsed\x12\x1a\n" +
	"\battempts\x18\n" +
	" \x01(\x05R\battempts\x12\x16\n" +
	"\x06chunks\x18\v \x01(\x05R\x06chunks\x12%\n" +
	"\x0eis_corrigendum\x18\f \x01(\bR\risCorrigendum\x12!\n" +
	"\fneeds_review\x18\r \x01(\bR\vneedsReview\x12\x1d\n" +
	"\n" +
	"model_name\x18\x0e \x01(\tR\tmodelName\x12\x18\n" +
	"\asummary\x18\x0f \x01(\tR\asummary\x12\x1d\n" +
	"\n" +
	"started_at\x18\x10 \x01(\tR\tstartedAt\x12\x1f\n" +
	"\vfinished_at\x18\x11 \x01(\tR\n" +
	"finishedAt\"\xa0\x01\n" +
	"\aJobPost\x12\x1b\n" +
	"\tpost_name\x18\x01 \x01(\tR\bpostName\x12\x1c\n" +
	"\tvacancies\x18\x02 \x01(\x05R\tvacancies\x12 \n" +
	"\veligibility\x18\x03 \x01(\tR\veligibility\x12\x1b\n" +
	"\tpay_level\x18\x04 \x01(\tR\bpayLevel\x12\x1b\n" +
	"\tage_limit\x18\x05 \x01(\tR\bageLimit2\xe2\x02\n" +
	"\rParserService\x12^\n" +
	"\x11ParseNotification\x12#.parser.v1.ParseNotificationRequest\x1a$.parser.v1.ParseNotificationResponse\x12O\n" +
	"\fEnqueueParse\x12\x1e.parser.v1.EnqueueParseRequest\x1a\x1f.parser.v1.EnqueueParseResponse\x12L\n" +
	"\vGetParseRun\x12\x1d.parser.v1.GetParseRunRequest\x1a\x1e.parser.v1.GetParseRunResponse\x12R\n" +
	"\rListParseRuns\x12\x1f.parser.v1.ListParseRunsRequest\x1a .parser.v1.ListParseRunsResponseBGZEgithub.com/jobsarthi/notification-parser/gen/proto/parser/v1;parserv1b\x06proto3"

var (
	file_parser_v1_parser_proto_rawDescOnce sync.Once
	file_parser_v1_parser_proto_rawDescData []byte
)

func file_parser_v1_parser_proto_rawDescGZIP() []byte {
	file_parser_v1_parser_proto_rawDescOnce.Do(func() {
		file_parser_v1_parser_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_parser_v1_parser_proto_rawDesc), len(file_parser_v1_parser_proto_rawDesc)))
	})
	return file_parser_v1_parser_proto_rawDescData
}

var file_parser_v1_parser_proto_msgTypes = make([]protoimpl.MessageInfo, 10)
var file_parser_v1_parser_proto_goTypes = []any{
	(*ParseNotificationRequest)(nil),  // 0: parser.v1.ParseNotificationRequest
	(*ParseNotificationResponse)(nil), // 1: parser.v1.ParseNotificationResponse
	(*EnqueueParseRequest)(nil),       // 2: parser.v1.EnqueueParseRequest
	(*EnqueueParseResponse)(nil),      // 3: parser.v1.EnqueueParseResponse
	(*GetParseRunRequest)(nil),        // 4: parser.v1.GetParseRunRequest
	(*GetParseRunResponse)(nil),       // 5: parser.v1.GetParseRunResponse
	(*ListParseRunsRequest)(nil),      // 6: parser.v1.ListParseRunsRequest
	(*ListParseRunsResponse)(nil),     // 7: parser.v1.ListParseRunsResponse
	(*ParseRun)(nil),                  // 8: parser.v1.ParseRun
	(*JobPost)(nil),                   // 9: parser.v1.JobPost
}
var file_parser_v1_parser_proto_depIdxs = []int32{
	8, // 0: parser.v1.ParseNotificationResponse.run:type_name -> parser.v1.ParseRun
	9, // 1: parser.v1.ParseNotificationResponse.posts:type_name -> parser.v1.JobPost
	8, // 2: parser.v1.GetParseRunResponse.run:type_name -> parser.v1.ParseRun
	9, // 3: parser.v1.GetParseRunResponse.posts:type_name -> parser.v1.JobPost
	8, // 4: parser.v1.ListParseRunsResponse.runs:type_name -> parser.v1.ParseRun
	0, // 5: parser.v1.ParserService.ParseNotification:input_type -> parser.v1.ParseNotificationRequest
	2, // 6: parser.v1.ParserService.EnqueueParse:input_type -> parser.v1.EnqueueParseRequest
	4, // 7: parser.v1.ParserService.GetParseRun:input_type -> parser.v1.GetParseRunRequest
	6, // 8: parser.v1.ParserService.ListParseRuns:input_type -> parser.v1.ListParseRunsRequest
	1, // 9: parser.v1.ParserService.ParseNotification:output_type -> parser.v1.ParseNotificationResponse
	3, // 10: parser.v1.ParserService.EnqueueParse:output_type -> parser.v1.EnqueueParseResponse
	5, // 11: parser.v1.ParserService.GetParseRun:output_type -> parser.v1.GetParseRunResponse
	7, // 12: parser.v1.ParserService.ListParseRuns:output_type -> parser.v1.ListParseRunsResponse
	9, // [9:13] is the sub-list for method output_type
	5, // [5:9] is the sub-list for method input_type
	5, // [5:5] is the sub-list for extension type_name
	5, // [5:5] is the sub-list for extension extendee
	0, // [0:5] is the sub-list for field type_name
}

func init() { file_parser_v1_parser_proto_init() }
func file_parser_v1_parser_proto_init() {
	if File_parser_v1_parser_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_parser_v1_parser_proto_rawDesc), len(file_parser_v1_parser_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   10,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_parser_v1_parser_proto_goTypes,
		DependencyIndexes: file_parser_v1_parser_proto_depIdxs,
		MessageInfos:      file_parser_v1_parser_proto_msgTypes,
	}.Build()
	File_parser_v1_parser_proto = out.File
	file_parser_v1_parser_proto_goTypes = nil
	file_parser_v1_parser_proto_depIdxs = nil
}
