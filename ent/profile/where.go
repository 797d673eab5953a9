// Code generated by ent, DO NOT EDIT.

package profile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/adityakr/prepdrill/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldID, id))
}

// ExamName applies equality check predicate on the "exam_name" field. It's identical to ExamNameEQ.
func ExamName(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldExamName, v))
}

// TargetScore applies equality check predicate on the "target_score" field. It's identical to TargetScoreEQ.
func TargetScore(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldTargetScore, v))
}

// StreakCount applies equality check predicate on the "streak_count" field. It's identical to StreakCountEQ.
func StreakCount(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldStreakCount, v))
}

// Zone applies equality check predicate on the "zone" field. It's identical to ZoneEQ.
func Zone(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldZone, v))
}

// ExamDate applies equality check predicate on the "exam_date" field. It's identical to ExamDateEQ.
func ExamDate(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldExamDate, v))
}

// GroupID applies equality check predicate on the "group_id" field. It's identical to GroupIDEQ.
func GroupID(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldGroupID, v))
}

// Region applies equality check predicate on the "region" field. It's identical to RegionEQ.
func Region(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldRegion, v))
}

// TargetLevel applies equality check predicate on the "target_level" field. It's identical to TargetLevelEQ.
func TargetLevel(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldTargetLevel, v))
}

// ExamNameEQ applies the EQ predicate on the "exam_name" field.
func ExamNameEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldExamName, v))
}

// ExamNameNEQ applies the NEQ predicate on the "exam_name" field.
func ExamNameNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldExamName, v))
}

// ExamNameIn applies the In predicate on the "exam_name" field.
func ExamNameIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldExamName, vs...))
}

// ExamNameNotIn applies the NotIn predicate on the "exam_name" field.
func ExamNameNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldExamName, vs...))
}

// ExamNameGT applies the GT predicate on the "exam_name" field.
func ExamNameGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldExamName, v))
}

// ExamNameGTE applies the GTE predicate on the "exam_name" field.
func ExamNameGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldExamName, v))
}

// ExamNameLT applies the LT predicate on the "exam_name" field.
func ExamNameLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldExamName, v))
}

// ExamNameLTE applies the LTE predicate on the "exam_name" field.
func ExamNameLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldExamName, v))
}

// ExamNameContains applies the Contains predicate on the "exam_name" field.
func ExamNameContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldExamName, v))
}

// ExamNameHasPrefix applies the HasPrefix predicate on the "exam_name" field.
func ExamNameHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldExamName, v))
}

// ExamNameHasSuffix applies the HasSuffix predicate on the "exam_name" field.
func ExamNameHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldExamName, v))
}

// ExamNameEqualFold applies the EqualFold predicate on the "exam_name" field.
func ExamNameEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldExamName, v))
}

// ExamNameContainsFold applies the ContainsFold predicate on the "exam_name" field.
func ExamNameContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldExamName, v))
}

// TargetScoreEQ applies the EQ predicate on the "target_score" field.
func TargetScoreEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldTargetScore, v))
}

// TargetScoreNEQ applies the NEQ predicate on the "target_score" field.
func TargetScoreNEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldTargetScore, v))
}

// TargetScoreIn applies the In predicate on the "target_score" field.
func TargetScoreIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldTargetScore, vs...))
}

// TargetScoreNotIn applies the NotIn predicate on the "target_score" field.
func TargetScoreNotIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldTargetScore, vs...))
}

// TargetScoreGT applies the GT predicate on the "target_score" field.
func TargetScoreGT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldTargetScore, v))
}

// TargetScoreGTE applies the GTE predicate on the "target_score" field.
func TargetScoreGTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldTargetScore, v))
}

// TargetScoreLT applies the LT predicate on the "target_score" field.
func TargetScoreLT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldTargetScore, v))
}

// TargetScoreLTE applies the LTE predicate on the "target_score" field.
func TargetScoreLTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldTargetScore, v))
}

// StreakCountEQ applies the EQ predicate on the "streak_count" field.
func StreakCountEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldStreakCount, v))
}

// StreakCountNEQ applies the NEQ predicate on the "streak_count" field.
func StreakCountNEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldStreakCount, v))
}

// StreakCountIn applies the In predicate on the "streak_count" field.
func StreakCountIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldStreakCount, vs...))
}

// StreakCountNotIn applies the NotIn predicate on the "streak_count" field.
func StreakCountNotIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldStreakCount, vs...))
}

// StreakCountGT applies the GT predicate on the "streak_count" field.
func StreakCountGT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldStreakCount, v))
}

// StreakCountGTE applies the GTE predicate on the "streak_count" field.
func StreakCountGTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldStreakCount, v))
}

// StreakCountLT applies the LT predicate on the "streak_count" field.
func StreakCountLT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldStreakCount, v))
}

// StreakCountLTE applies the LTE predicate on the "streak_count" field.
func StreakCountLTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldStreakCount, v))
}

// ZoneEQ applies the EQ predicate on the "zone" field.
func ZoneEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldZone, v))
}

// ZoneNEQ applies the NEQ predicate on the "zone" field.
func ZoneNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldZone, v))
}

// ZoneIn applies the In predicate on the "zone" field.
func ZoneIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldZone, vs...))
}

// ZoneNotIn applies the NotIn predicate on the "zone" field.
func ZoneNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldZone, vs...))
}

// ZoneGT applies the GT predicate on the "zone" field.
func ZoneGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldZone, v))
}

// ZoneGTE applies the GTE predicate on the "zone" field.
func ZoneGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldZone, v))
}

// ZoneLT applies the LT predicate on the "zone" field.
func ZoneLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldZone, v))
}

// ZoneLTE applies the LTE predicate on the "zone" field.
func ZoneLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldZone, v))
}

// ZoneContains applies the Contains predicate on the "zone" field.
func ZoneContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldZone, v))
}

// ZoneHasPrefix applies the HasPrefix predicate on the "zone" field.
func ZoneHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldZone, v))
}

// ZoneHasSuffix applies the HasSuffix predicate on the "zone" field.
func ZoneHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldZone, v))
}

// ZoneEqualFold applies the EqualFold predicate on the "zone" field.
func ZoneEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldZone, v))
}

// ZoneContainsFold applies the ContainsFold predicate on the "zone" field.
func ZoneContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldZone, v))
}

// ExamDateEQ applies the EQ predicate on the "exam_date" field.
func ExamDateEQ(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldExamDate, v))
}

// ExamDateNEQ applies the NEQ predicate on the "exam_date" field.
func ExamDateNEQ(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldExamDate, v))
}

// ExamDateIn applies the In predicate on the "exam_date" field.
func ExamDateIn(vs ...time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldExamDate, vs...))
}

// ExamDateNotIn applies the NotIn predicate on the "exam_date" field.
func ExamDateNotIn(vs ...time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldExamDate, vs...))
}

// ExamDateGT applies the GT predicate on the "exam_date" field.
func ExamDateGT(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldExamDate, v))
}

// ExamDateGTE applies the GTE predicate on the "exam_date" field.
func ExamDateGTE(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldExamDate, v))
}

// ExamDateLT applies the LT predicate on the "exam_date" field.
func ExamDateLT(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldExamDate, v))
}

// ExamDateLTE applies the LTE predicate on the "exam_date" field.
func ExamDateLTE(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldExamDate, v))
}

// GroupIDEQ applies the EQ predicate on the "group_id" field.
func GroupIDEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldGroupID, v))
}

// GroupIDNEQ applies the NEQ predicate on the "group_id" field.
func GroupIDNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldGroupID, v))
}

// GroupIDIn applies the In predicate on the "group_id" field.
func GroupIDIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldGroupID, vs...))
}

// GroupIDNotIn applies the NotIn predicate on the "group_id" field.
func GroupIDNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldGroupID, vs...))
}

// GroupIDGT applies the GT predicate on the "group_id" field.
func GroupIDGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldGroupID, v))
}

// GroupIDGTE applies the GTE predicate on the "group_id" field.
func GroupIDGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldGroupID, v))
}

// GroupIDLT applies the LT predicate on the "group_id" field.
func GroupIDLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldGroupID, v))
}

// GroupIDLTE applies the LTE predicate on the "group_id" field.
func GroupIDLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldGroupID, v))
}

// GroupIDContains applies the Contains predicate on the "group_id" field.
func GroupIDContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldGroupID, v))
}

// GroupIDHasPrefix applies the HasPrefix predicate on the "group_id" field.
func GroupIDHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldGroupID, v))
}

// GroupIDHasSuffix applies the HasSuffix predicate on the "group_id" field.
func GroupIDHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldGroupID, v))
}

// GroupIDEqualFold applies the EqualFold predicate on the "group_id" field.
func GroupIDEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldGroupID, v))
}

// GroupIDContainsFold applies the ContainsFold predicate on the "group_id" field.
func GroupIDContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldGroupID, v))
}

// RegionEQ applies the EQ predicate on the "region" field.
func RegionEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldRegion, v))
}

// RegionNEQ applies the NEQ predicate on the "region" field.
func RegionNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldRegion, v))
}

// RegionIn applies the In predicate on the "region" field.
func RegionIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldRegion, vs...))
}

// RegionNotIn applies the NotIn predicate on the "region" field.
func RegionNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldRegion, vs...))
}

// RegionGT applies the GT predicate on the "region" field.
func RegionGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldRegion, v))
}

// RegionGTE applies the GTE predicate on the "region" field.
func RegionGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldRegion, v))
}

// RegionLT applies the LT predicate on the "region" field.
func RegionLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldRegion, v))
}

// RegionLTE applies the LTE predicate on the "region" field.
func RegionLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldRegion, v))
}

// RegionContains applies the Contains predicate on the "region" field.
func RegionContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldRegion, v))
}

// RegionHasPrefix applies the HasPrefix predicate on the "region" field.
func RegionHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldRegion, v))
}

// RegionHasSuffix applies the HasSuffix predicate on the "region" field.
func RegionHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldRegion, v))
}

// RegionEqualFold applies the EqualFold predicate on the "region" field.
func RegionEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldRegion, v))
}

// RegionContainsFold applies the ContainsFold predicate on the "region" field.
func RegionContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldRegion, v))
}

// TargetLevelEQ applies the EQ predicate on the "target_level" field.
func TargetLevelEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldTargetLevel, v))
}

// TargetLevelNEQ applies the NEQ predicate on the "target_level" field.
func TargetLevelNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldTargetLevel, v))
}

// TargetLevelIn applies the In predicate on the "target_level" field.
func TargetLevelIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldTargetLevel, vs...))
}

// TargetLevelNotIn applies the NotIn predicate on the "target_level" field.
func TargetLevelNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldTargetLevel, vs...))
}

// TargetLevelGT applies the GT predicate on the "target_level" field.
func TargetLevelGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldTargetLevel, v))
}

// TargetLevelGTE applies the GTE predicate on the "target_level" field.
func TargetLevelGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldTargetLevel, v))
}

// TargetLevelLT applies the LT predicate on the "target_level" field.
func TargetLevelLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldTargetLevel, v))
}

// TargetLevelLTE applies the LTE predicate on the "target_level" field.
func TargetLevelLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldTargetLevel, v))
}

// TargetLevelContains applies the Contains predicate on the "target_level" field.
func TargetLevelContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldTargetLevel, v))
}

// TargetLevelHasPrefix applies the HasPrefix predicate on the "target_level" field.
func TargetLevelHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldTargetLevel, v))
}

// TargetLevelHasSuffix applies the HasSuffix predicate on the "target_level" field.
func TargetLevelHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldTargetLevel, v))
}

// TargetLevelEqualFold applies the EqualFold predicate on the "target_level" field.
func TargetLevelEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldTargetLevel, v))
}

// TargetLevelContainsFold applies the ContainsFold predicate on the "target_level" field.
func TargetLevelContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldTargetLevel, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.NotPredicates(p))
}
