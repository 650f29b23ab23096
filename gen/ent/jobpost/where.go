// Code generated by ent, DO NOT EDIT.

package jobpost

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/jobsarthi/notification-parser/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.JobPost {
	return predicate.JobPost(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.JobPost {
	return predicate.JobPost(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.JobPost {
	return predicate.JobPost(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.JobPost {
	return predicate.JobPost(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.JobPost {
	return predicate.JobPost(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.JobPost {
	return predicate.JobPost(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.JobPost {
	return predicate.JobPost(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.JobPost {
	return predicate.JobPost(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.JobPost {
	return predicate.JobPost(sql.FieldLTE(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v uuid.UUID) predicate.JobPost {
	return predicate.JobPost(sql.FieldEQ(FieldRunID, v))
}

// PostName applies equality check predicate on the "post_name" field. It's identical to PostNameEQ.
func PostName(v string) predicate.JobPost {
	return predicate.JobPost(sql.FieldEQ(FieldPostName, v))
}

// Vacancies applies equality check predicate on the "vacancies" field. It's identical to VacanciesEQ.
func Vacancies(v int) predicate.JobPost {
	return predicate.JobPost(sql.FieldEQ(FieldVacancies, v))
}

// Eligibility applies equality check predicate on the "eligibility" field. It's identical to EligibilityEQ.
func Eligibility(v string) predicate.JobPost {
	return predicate.JobPost(sql.FieldEQ(FieldEligibility, v))
}

// PayLevel applies equality check predicate on the "pay_level" field. It's identical to PayLevelEQ.
func PayLevel(v string) predicate.JobPost {
	return predicate.JobPost(sql.FieldEQ(FieldPayLevel, v))
}

// AgeLimit applies equality check predicate on the "age_limit" field. It's identical to AgeLimitEQ.
func AgeLimit(v string) predicate.JobPost {
	return predicate.JobPost(sql.FieldEQ(FieldAgeLimit, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v uuid.UUID) predicate.JobPost {
	return predicate.JobPost(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v uuid.UUID) predicate.JobPost {
	return predicate.JobPost(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...uuid.UUID) predicate.JobPost {
	return predicate.JobPost(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...uuid.UUID) predicate.JobPost {
	return predicate.JobPost(sql.FieldNotIn(FieldRunID, vs...))
}

// PostNameEQ applies the EQ predicate on the "post_name" field.
func PostNameEQ(v string) predicate.JobPost {
	return predicate.JobPost(sql.FieldEQ(FieldPostName, v))
}

// PostNameNEQ applies the NEQ predicate on the "post_name" field.
func PostNameNEQ(v string) predicate.JobPost {
	return predicate.JobPost(sql.FieldNEQ(FieldPostName, v))
}

// PostNameIn applies the In predicate on the "post_name" field.
func PostNameIn(vs ...string) predicate.JobPost {
	return predicate.JobPost(sql.FieldIn(FieldPostName, vs...))
}

// PostNameNotIn applies the NotIn predicate on the "post_name" field.
func PostNameNotIn(vs ...string) predicate.JobPost {
	return predicate.JobPost(sql.FieldNotIn(FieldPostName, vs...))
}

// PostNameGT applies the GT predicate on the "post_name" field.
func PostNameGT(v string) predicate.JobPost {
	return predicate.JobPost(sql.FieldGT(FieldPostName, v))
}

// PostNameGTE applies the GTE predicate on the "post_name" field.
func PostNameGTE(v string) predicate.JobPost {
	return predicate.JobPost(sql.FieldGTE(FieldPostName, v))
}

// PostNameLT applies the LT predicate on the "post_name" field.
func PostNameLT(v string) predicate.JobPost {
	return predicate.JobPost(sql.FieldLT(FieldPostName, v))
}

// PostNameLTE applies the LTE predicate on the "post_name" field.
func PostNameLTE(v string) predicate.JobPost {
	return predicate.JobPost(sql.FieldLTE(FieldPostName, v))
}

// PostNameContains applies the Contains predicate on the "post_name" field.
func PostNameContains(v string) predicate.JobPost {
	return predicate.JobPost(sql.FieldContains(FieldPostName, v))
}

// PostNameHasPrefix applies the HasPrefix predicate on the "post_name" field.
func PostNameHasPrefix(v string) predicate.JobPost {
	return predicate.JobPost(sql.FieldHasPrefix(FieldPostName, v))
}

// PostNameHasSuffix applies the HasSuffix predicate on the "post_name" field.
func PostNameHasSuffix(v string) predicate.JobPost {
	return predicate.JobPost(sql.FieldHasSuffix(FieldPostName, v))
}

// PostNameEqualFold applies the EqualFold predicate on the "post_name" field.
func PostNameEqualFold(v string) predicate.JobPost {
	return predicate.JobPost(sql.FieldEqualFold(FieldPostName, v))
}

// PostNameContainsFold applies the ContainsFold predicate on the "post_name" field.
func PostNameContainsFold(v string) predicate.JobPost {
	return predicate.JobPost(sql.FieldContainsFold(FieldPostName, v))
}

// VacanciesEQ applies the EQ predicate on the "vacancies" field.
func VacanciesEQ(v int) predicate.JobPost {
	return predicate.JobPost(sql.FieldEQ(FieldVacancies, v))
}

// VacanciesNEQ applies the NEQ predicate on the "vacancies" field.
func VacanciesNEQ(v int) predicate.JobPost {
	return predicate.JobPost(sql.FieldNEQ(FieldVacancies, v))
}

// VacanciesIn applies the In predicate on the "vacancies" field.
func VacanciesIn(vs ...int) predicate.JobPost {
	return predicate.JobPost(sql.FieldIn(FieldVacancies, vs...))
}

// VacanciesNotIn applies the NotIn predicate on the "vacancies" field.
func VacanciesNotIn(vs ...int) predicate.JobPost {
	return predicate.JobPost(sql.FieldNotIn(FieldVacancies, vs...))
}

// VacanciesGT applies the GT predicate on the "vacancies" field.
func VacanciesGT(v int) predicate.JobPost {
	return predicate.JobPost(sql.FieldGT(FieldVacancies, v))
}

// VacanciesGTE applies the GTE predicate on the "vacancies" field.
func VacanciesGTE(v int) predicate.JobPost {
	return predicate.JobPost(sql.FieldGTE(FieldVacancies, v))
}

// VacanciesLT applies the LT predicate on the "vacancies" field.
func VacanciesLT(v int) predicate.JobPost {
	return predicate.JobPost(sql.FieldLT(FieldVacancies, v))
}

// VacanciesLTE applies the LTE predicate on the "vacancies" field.
func VacanciesLTE(v int) predicate.JobPost {
	return predicate.JobPost(sql.FieldLTE(FieldVacancies, v))
}

// VacanciesIsNil applies the IsNil predicate on the "vacancies" field.
func VacanciesIsNil() predicate.JobPost {
	return predicate.JobPost(sql.FieldIsNull(FieldVacancies))
}

// VacanciesNotNil applies the NotNil predicate on the "vacancies" field.
func VacanciesNotNil() predicate.JobPost {
	return predicate.JobPost(sql.FieldNotNull(FieldVacancies))
}

// EligibilityEQ applies the EQ predicate on the "eligibility" field.
func EligibilityEQ(v string) predicate.JobPost {
	return predicate.JobPost(sql.FieldEQ(FieldEligibility, v))
}

// EligibilityNEQ applies the NEQ predicate on the "eligibility" field.
func EligibilityNEQ(v string) predicate.JobPost {
	return predicate.JobPost(sql.FieldNEQ(FieldEligibility, v))
}

// EligibilityIn applies the In predicate on the "eligibility" field.
func EligibilityIn(vs ...string) predicate.JobPost {
	return predicate.JobPost(sql.FieldIn(FieldEligibility, vs...))
}

// EligibilityNotIn applies the NotIn predicate on the "eligibility" field.
func EligibilityNotIn(vs ...string) predicate.JobPost {
	return predicate.JobPost(sql.FieldNotIn(FieldEligibility, vs...))
}

// EligibilityGT applies the GT predicate on the "eligibility" field.
func EligibilityGT(v string) predicate.JobPost {
	return predicate.JobPost(sql.FieldGT(FieldEligibility, v))
}

// EligibilityGTE applies the GTE predicate on the "eligibility" field.
func EligibilityGTE(v string) predicate.JobPost {
	return predicate.JobPost(sql.FieldGTE(FieldEligibility, v))
}

// EligibilityLT applies the LT predicate on the "eligibility" field.
func EligibilityLT(v string) predicate.JobPost {
	return predicate.JobPost(sql.FieldLT(FieldEligibility, v))
}

// EligibilityLTE applies the LTE predicate on the "eligibility" field.
func EligibilityLTE(v string) predicate.JobPost {
	return predicate.JobPost(sql.FieldLTE(FieldEligibility, v))
}

// EligibilityContains applies the Contains predicate on the "eligibility" field.
func EligibilityContains(v string) predicate.JobPost {
	return predicate.JobPost(sql.FieldContains(FieldEligibility, v))
}

// EligibilityHasPrefix applies the HasPrefix predicate on the "eligibility" field.
func EligibilityHasPrefix(v string) predicate.JobPost {
	return predicate.JobPost(sql.FieldHasPrefix(FieldEligibility, v))
}

// EligibilityHasSuffix applies the HasSuffix predicate on the "eligibility" field.
func EligibilityHasSuffix(v string) predicate.JobPost {
	return predicate.JobPost(sql.FieldHasSuffix(FieldEligibility, v))
}

// EligibilityIsNil applies the IsNil predicate on the "eligibility" field.
func EligibilityIsNil() predicate.JobPost {
	return predicate.JobPost(sql.FieldIsNull(FieldEligibility))
}

// EligibilityNotNil applies the NotNil predicate on the "eligibility" field.
func EligibilityNotNil() predicate.JobPost {
	return predicate.JobPost(sql.FieldNotNull(FieldEligibility))
}

// EligibilityEqualFold applies the EqualFold predicate on the "eligibility" field.
func EligibilityEqualFold(v string) predicate.JobPost {
	return predicate.JobPost(sql.FieldEqualFold(FieldEligibility, v))
}

// EligibilityContainsFold applies the ContainsFold predicate on the "eligibility" field.
func EligibilityContainsFold(v string) predicate.JobPost {
	return predicate.JobPost(sql.FieldContainsFold(FieldEligibility, v))
}

// PayLevelEQ applies the EQ predicate on the "pay_level" field.
func PayLevelEQ(v string) predicate.JobPost {
	return predicate.JobPost(sql.FieldEQ(FieldPayLevel, v))
}

// PayLevelNEQ applies the NEQ predicate on the "pay_level" field.
func PayLevelNEQ(v string) predicate.JobPost {
	return predicate.JobPost(sql.FieldNEQ(FieldPayLevel, v))
}

// PayLevelIn applies the In predicate on the "pay_level" field.
func PayLevelIn(vs ...string) predicate.JobPost {
	return predicate.JobPost(sql.FieldIn(FieldPayLevel, vs...))
}

// PayLevelNotIn applies the NotIn predicate on the "pay_level" field.
func PayLevelNotIn(vs ...string) predicate.JobPost {
	return predicate.JobPost(sql.FieldNotIn(FieldPayLevel, vs...))
}

// PayLevelGT applies the GT predicate on the "pay_level" field.
func PayLevelGT(v string) predicate.JobPost {
	return predicate.JobPost(sql.FieldGT(FieldPayLevel, v))
}

// PayLevelGTE applies the GTE predicate on the "pay_level" field.
func PayLevelGTE(v string) predicate.JobPost {
	return predicate.JobPost(sql.FieldGTE(FieldPayLevel, v))
}

// PayLevelLT applies the LT predicate on the "pay_level" field.
func PayLevelLT(v string) predicate.JobPost {
	return predicate.JobPost(sql.FieldLT(FieldPayLevel, v))
}

// PayLevelLTE applies the LTE predicate on the "pay_level" field.
func PayLevelLTE(v string) predicate.JobPost {
	return predicate.JobPost(sql.FieldLTE(FieldPayLevel, v))
}

// PayLevelContains applies the Contains predicate on the "pay_level" field.
func PayLevelContains(v string) predicate.JobPost {
	return predicate.JobPost(sql.FieldContains(FieldPayLevel, v))
}

// PayLevelHasPrefix applies the HasPrefix predicate on the "pay_level" field.
func PayLevelHasPrefix(v string) predicate.JobPost {
	return predicate.JobPost(sql.FieldHasPrefix(FieldPayLevel, v))
}

// PayLevelHasSuffix applies the HasSuffix predicate on the "pay_level" field.
func PayLevelHasSuffix(v string) predicate.JobPost {
	return predicate.JobPost(sql.FieldHasSuffix(FieldPayLevel, v))
}

// PayLevelIsNil applies the IsNil predicate on the "pay_level" field.
func PayLevelIsNil() predicate.JobPost {
	return predicate.JobPost(sql.FieldIsNull(FieldPayLevel))
}

// PayLevelNotNil applies the NotNil predicate on the "pay_level" field.
func PayLevelNotNil() predicate.JobPost {
	return predicate.JobPost(sql.FieldNotNull(FieldPayLevel))
}

// PayLevelEqualFold applies the EqualFold predicate on the "pay_level" field.
func PayLevelEqualFold(v string) predicate.JobPost {
	return predicate.JobPost(sql.FieldEqualFold(FieldPayLevel, v))
}

// PayLevelContainsFold applies the ContainsFold predicate on the "pay_level" field.
func PayLevelContainsFold(v string) predicate.JobPost {
	return predicate.JobPost(sql.FieldContainsFold(FieldPayLevel, v))
}

// AgeLimitEQ applies the EQ predicate on the "age_limit" field.
func AgeLimitEQ(v string) predicate.JobPost {
	return predicate.JobPost(sql.FieldEQ(FieldAgeLimit, v))
}

// AgeLimitNEQ applies the NEQ predicate on the "age_limit" field.
func AgeLimitNEQ(v string) predicate.JobPost {
	return predicate.JobPost(sql.FieldNEQ(FieldAgeLimit, v))
}

// AgeLimitIn applies the In predicate on the "age_limit" field.
func AgeLimitIn(vs ...string) predicate.JobPost {
	return predicate.JobPost(sql.FieldIn(FieldAgeLimit, vs...))
}

// AgeLimitNotIn applies the NotIn predicate on the "age_limit" field.
func AgeLimitNotIn(vs ...string) predicate.JobPost {
	return predicate.JobPost(sql.FieldNotIn(FieldAgeLimit, vs...))
}

// AgeLimitGT applies the GT predicate on the "age_limit" field.
func AgeLimitGT(v string) predicate.JobPost {
	return predicate.JobPost(sql.FieldGT(FieldAgeLimit, v))
}

// AgeLimitGTE applies the GTE predicate on the "age_limit" field.
func AgeLimitGTE(v string) predicate.JobPost {
	return predicate.JobPost(sql.FieldGTE(FieldAgeLimit, v))
}

// AgeLimitLT applies the LT predicate on the "age_limit" field.
func AgeLimitLT(v string) predicate.JobPost {
	return predicate.JobPost(sql.FieldLT(FieldAgeLimit, v))
}

// AgeLimitLTE applies the LTE predicate on the "age_limit" field.
func AgeLimitLTE(v string) predicate.JobPost {
	return predicate.JobPost(sql.FieldLTE(FieldAgeLimit, v))
}

// AgeLimitContains applies the Contains predicate on the "age_limit" field.
func AgeLimitContains(v string) predicate.JobPost {
	return predicate.JobPost(sql.FieldContains(FieldAgeLimit, v))
}

// AgeLimitHasPrefix applies the HasPrefix predicate on the "age_limit" field.
func AgeLimitHasPrefix(v string) predicate.JobPost {
	return predicate.JobPost(sql.FieldHasPrefix(FieldAgeLimit, v))
}

// AgeLimitHasSuffix applies the HasSuffix predicate on the "age_limit" field.
func AgeLimitHasSuffix(v string) predicate.JobPost {
	return predicate.JobPost(sql.FieldHasSuffix(FieldAgeLimit, v))
}

// AgeLimitIsNil applies the IsNil predicate on the "age_limit" field.
func AgeLimitIsNil() predicate.JobPost {
	return predicate.JobPost(sql.FieldIsNull(FieldAgeLimit))
}

// AgeLimitNotNil applies the NotNil predicate on the "age_limit" field.
func AgeLimitNotNil() predicate.JobPost {
	return predicate.JobPost(sql.FieldNotNull(FieldAgeLimit))
}

// AgeLimitEqualFold applies the EqualFold predicate on the "age_limit" field.
func AgeLimitEqualFold(v string) predicate.JobPost {
	return predicate.JobPost(sql.FieldEqualFold(FieldAgeLimit, v))
}

// AgeLimitContainsFold applies the ContainsFold predicate on the "age_limit" field.
func AgeLimitContainsFold(v string) predicate.JobPost {
	return predicate.JobPost(sql.FieldContainsFold(FieldAgeLimit, v))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.JobPost {
	return predicate.JobPost(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.ParseRun) predicate.JobPost {
	return predicate.JobPost(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.JobPost) predicate.JobPost {
	return predicate.JobPost(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.JobPost) predicate.JobPost {
	return predicate.JobPost(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.JobPost) predicate.JobPost {
	return predicate.JobPost(sql.NotPredicates(p))
}
