// Code generated by ent, DO NOT EDIT.

package answer

import (
	"entgo.io/ent/dialect/sql"
	"github.com/adityakr/prepdrill/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Answer {
	return predicate.Answer(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Answer {
	return predicate.Answer(sql.FieldContainsFold(FieldID, id))
}

// PaperID applies equality check predicate on the "paper_id" field. It's identical to PaperIDEQ.
func PaperID(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldPaperID, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldQuestionID, v))
}

// UserAnswer applies equality check predicate on the "user_answer" field. It's identical to UserAnswerEQ.
func UserAnswer(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldUserAnswer, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldCorrect, v))
}

// TimeSpentSecs applies equality check predicate on the "time_spent_secs" field. It's identical to TimeSpentSecsEQ.
func TimeSpentSecs(v int) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldTimeSpentSecs, v))
}

// MistakeCategory applies equality check predicate on the "mistake_category" field. It's identical to MistakeCategoryEQ.
func MistakeCategory(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldMistakeCategory, v))
}

// PaperIDEQ applies the EQ predicate on the "paper_id" field.
func PaperIDEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldPaperID, v))
}

// PaperIDNEQ applies the NEQ predicate on the "paper_id" field.
func PaperIDNEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldPaperID, v))
}

// PaperIDIn applies the In predicate on the "paper_id" field.
func PaperIDIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldPaperID, vs...))
}

// PaperIDNotIn applies the NotIn predicate on the "paper_id" field.
func PaperIDNotIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldPaperID, vs...))
}

// PaperIDGT applies the GT predicate on the "paper_id" field.
func PaperIDGT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldPaperID, v))
}

// PaperIDGTE applies the GTE predicate on the "paper_id" field.
func PaperIDGTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldPaperID, v))
}

// PaperIDLT applies the LT predicate on the "paper_id" field.
func PaperIDLT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldPaperID, v))
}

// PaperIDLTE applies the LTE predicate on the "paper_id" field.
func PaperIDLTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldPaperID, v))
}

// PaperIDContains applies the Contains predicate on the "paper_id" field.
func PaperIDContains(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContains(FieldPaperID, v))
}

// PaperIDHasPrefix applies the HasPrefix predicate on the "paper_id" field.
func PaperIDHasPrefix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasPrefix(FieldPaperID, v))
}

// PaperIDHasSuffix applies the HasSuffix predicate on the "paper_id" field.
func PaperIDHasSuffix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasSuffix(FieldPaperID, v))
}

// PaperIDEqualFold applies the EqualFold predicate on the "paper_id" field.
func PaperIDEqualFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEqualFold(FieldPaperID, v))
}

// PaperIDContainsFold applies the ContainsFold predicate on the "paper_id" field.
func PaperIDContainsFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContainsFold(FieldPaperID, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContainsFold(FieldQuestionID, v))
}

// UserAnswerEQ applies the EQ predicate on the "user_answer" field.
func UserAnswerEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldUserAnswer, v))
}

// UserAnswerNEQ applies the NEQ predicate on the "user_answer" field.
func UserAnswerNEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldUserAnswer, v))
}

// UserAnswerIn applies the In predicate on the "user_answer" field.
func UserAnswerIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldUserAnswer, vs...))
}

// UserAnswerNotIn applies the NotIn predicate on the "user_answer" field.
func UserAnswerNotIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldUserAnswer, vs...))
}

// UserAnswerGT applies the GT predicate on the "user_answer" field.
func UserAnswerGT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldUserAnswer, v))
}

// UserAnswerGTE applies the GTE predicate on the "user_answer" field.
func UserAnswerGTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldUserAnswer, v))
}

// UserAnswerLT applies the LT predicate on the "user_answer" field.
func UserAnswerLT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldUserAnswer, v))
}

// UserAnswerLTE applies the LTE predicate on the "user_answer" field.
func UserAnswerLTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldUserAnswer, v))
}

// UserAnswerContains applies the Contains predicate on the "user_answer" field.
func UserAnswerContains(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContains(FieldUserAnswer, v))
}

// UserAnswerHasPrefix applies the HasPrefix predicate on the "user_answer" field.
func UserAnswerHasPrefix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasPrefix(FieldUserAnswer, v))
}

// UserAnswerHasSuffix applies the HasSuffix predicate on the "user_answer" field.
func UserAnswerHasSuffix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasSuffix(FieldUserAnswer, v))
}

// UserAnswerEqualFold applies the EqualFold predicate on the "user_answer" field.
func UserAnswerEqualFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEqualFold(FieldUserAnswer, v))
}

// UserAnswerContainsFold applies the ContainsFold predicate on the "user_answer" field.
func UserAnswerContainsFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContainsFold(FieldUserAnswer, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldCorrect, v))
}

// TimeSpentSecsEQ applies the EQ predicate on the "time_spent_secs" field.
func TimeSpentSecsEQ(v int) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldTimeSpentSecs, v))
}

// TimeSpentSecsNEQ applies the NEQ predicate on the "time_spent_secs" field.
func TimeSpentSecsNEQ(v int) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldTimeSpentSecs, v))
}

// TimeSpentSecsIn applies the In predicate on the "time_spent_secs" field.
func TimeSpentSecsIn(vs ...int) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldTimeSpentSecs, vs...))
}

// TimeSpentSecsNotIn applies the NotIn predicate on the "time_spent_secs" field.
func TimeSpentSecsNotIn(vs ...int) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldTimeSpentSecs, vs...))
}

// TimeSpentSecsGT applies the GT predicate on the "time_spent_secs" field.
func TimeSpentSecsGT(v int) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldTimeSpentSecs, v))
}

// TimeSpentSecsGTE applies the GTE predicate on the "time_spent_secs" field.
func TimeSpentSecsGTE(v int) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldTimeSpentSecs, v))
}

// TimeSpentSecsLT applies the LT predicate on the "time_spent_secs" field.
func TimeSpentSecsLT(v int) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldTimeSpentSecs, v))
}

// TimeSpentSecsLTE applies the LTE predicate on the "time_spent_secs" field.
func TimeSpentSecsLTE(v int) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldTimeSpentSecs, v))
}

// MistakeCategoryEQ applies the EQ predicate on the "mistake_category" field.
func MistakeCategoryEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldMistakeCategory, v))
}

// MistakeCategoryNEQ applies the NEQ predicate on the "mistake_category" field.
func MistakeCategoryNEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldMistakeCategory, v))
}

// MistakeCategoryIn applies the In predicate on the "mistake_category" field.
func MistakeCategoryIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldMistakeCategory, vs...))
}

// MistakeCategoryNotIn applies the NotIn predicate on the "mistake_category" field.
func MistakeCategoryNotIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldMistakeCategory, vs...))
}

// MistakeCategoryGT applies the GT predicate on the "mistake_category" field.
func MistakeCategoryGT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldMistakeCategory, v))
}

// MistakeCategoryGTE applies the GTE predicate on the "mistake_category" field.
func MistakeCategoryGTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldMistakeCategory, v))
}

// MistakeCategoryLT applies the LT predicate on the "mistake_category" field.
func MistakeCategoryLT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldMistakeCategory, v))
}

// MistakeCategoryLTE applies the LTE predicate on the "mistake_category" field.
func MistakeCategoryLTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldMistakeCategory, v))
}

// MistakeCategoryContains applies the Contains predicate on the "mistake_category" field.
func MistakeCategoryContains(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContains(FieldMistakeCategory, v))
}

// MistakeCategoryHasPrefix applies the HasPrefix predicate on the "mistake_category" field.
func MistakeCategoryHasPrefix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasPrefix(FieldMistakeCategory, v))
}

// MistakeCategoryHasSuffix applies the HasSuffix predicate on the "mistake_category" field.
func MistakeCategoryHasSuffix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasSuffix(FieldMistakeCategory, v))
}

// MistakeCategoryEqualFold applies the EqualFold predicate on the "mistake_category" field.
func MistakeCategoryEqualFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEqualFold(FieldMistakeCategory, v))
}

// MistakeCategoryContainsFold applies the ContainsFold predicate on the "mistake_category" field.
func MistakeCategoryContainsFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContainsFold(FieldMistakeCategory, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Answer) predicate.Answer {
	return predicate.Answer(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Answer) predicate.Answer {
	return predicate.Answer(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Answer) predicate.Answer {
	return predicate.Answer(sql.NotPredicates(p))
}
