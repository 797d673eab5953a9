// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/adityakr/prepdrill/ent/answer"
	"github.com/adityakr/prepdrill/ent/llmrequestevent"
	"github.com/adityakr/prepdrill/ent/paper"
	"github.com/adityakr/prepdrill/ent/profile"
	"github.com/adityakr/prepdrill/ent/question"
	"github.com/adityakr/prepdrill/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answerFields := schema.Answer{}.Fields()
	_ = answerFields
	// answerDescPaperID is the schema descriptor for paper_id field.
	answerDescPaperID := answerFields[1].Descriptor()
	// answer.PaperIDValidator is a validator for the "paper_id" field. It is called by the builders before save.
	answer.PaperIDValidator = answerDescPaperID.Validators[0].(func(string) error)
	// answerDescQuestionID is the schema descriptor for question_id field.
	answerDescQuestionID := answerFields[2].Descriptor()
	// answer.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answer.QuestionIDValidator = answerDescQuestionID.Validators[0].(func(string) error)
	// answerDescUserAnswer is the schema descriptor for user_answer field.
	answerDescUserAnswer := answerFields[3].Descriptor()
	// answer.DefaultUserAnswer holds the default value on creation for the user_answer field.
	answer.DefaultUserAnswer = answerDescUserAnswer.Default.(string)
	// answerDescTimeSpentSecs is the schema descriptor for time_spent_secs field.
	answerDescTimeSpentSecs := answerFields[5].Descriptor()
	// answer.DefaultTimeSpentSecs holds the default value on creation for the time_spent_secs field.
	answer.DefaultTimeSpentSecs = answerDescTimeSpentSecs.Default.(int)
	// answerDescMistakeCategory is the schema descriptor for mistake_category field.
	answerDescMistakeCategory := answerFields[6].Descriptor()
	// answer.DefaultMistakeCategory holds the default value on creation for the mistake_category field.
	answer.DefaultMistakeCategory = answerDescMistakeCategory.Default.(string)
	// answerDescID is the schema descriptor for id field.
	answerDescID := answerFields[0].Descriptor()
	// answer.IDValidator is a validator for the "id" field. It is called by the builders before save.
	answer.IDValidator = answerDescID.Validators[0].(func(string) error)
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	paperFields := schema.Paper{}.Fields()
	_ = paperFields
	// paperDescOwnerID is the schema descriptor for owner_id field.
	paperDescOwnerID := paperFields[1].Descriptor()
	// paper.OwnerIDValidator is a validator for the "owner_id" field. It is called by the builders before save.
	paper.OwnerIDValidator = paperDescOwnerID.Validators[0].(func(string) error)
	// paperDescStatus is the schema descriptor for status field.
	paperDescStatus := paperFields[2].Descriptor()
	// paper.DefaultStatus holds the default value on creation for the status field.
	paper.DefaultStatus = paperDescStatus.Default.(string)
	// paperDescScore is the schema descriptor for score field.
	paperDescScore := paperFields[3].Descriptor()
	// paper.DefaultScore holds the default value on creation for the score field.
	paper.DefaultScore = paperDescScore.Default.(int)
	// paperDescAccuracy is the schema descriptor for accuracy field.
	paperDescAccuracy := paperFields[4].Descriptor()
	// paper.DefaultAccuracy holds the default value on creation for the accuracy field.
	paper.DefaultAccuracy = paperDescAccuracy.Default.(int)
	// paperDescDifficultyLevel is the schema descriptor for difficulty_level field.
	paperDescDifficultyLevel := paperFields[5].Descriptor()
	// paper.DefaultDifficultyLevel holds the default value on creation for the difficulty_level field.
	paper.DefaultDifficultyLevel = paperDescDifficultyLevel.Default.(int)
	// paperDescRecoveryMode is the schema descriptor for recovery_mode field.
	paperDescRecoveryMode := paperFields[6].Descriptor()
	// paper.DefaultRecoveryMode holds the default value on creation for the recovery_mode field.
	paper.DefaultRecoveryMode = paperDescRecoveryMode.Default.(bool)
	// paperDescCreatedAt is the schema descriptor for created_at field.
	paperDescCreatedAt := paperFields[7].Descriptor()
	// paper.DefaultCreatedAt holds the default value on creation for the created_at field.
	paper.DefaultCreatedAt = paperDescCreatedAt.Default.(func() time.Time)
	// paperDescID is the schema descriptor for id field.
	paperDescID := paperFields[0].Descriptor()
	// paper.IDValidator is a validator for the "id" field. It is called by the builders before save.
	paper.IDValidator = paperDescID.Validators[0].(func(string) error)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescExamName is the schema descriptor for exam_name field.
	profileDescExamName := profileFields[1].Descriptor()
	// profile.ExamNameValidator is a validator for the "exam_name" field. It is called by the builders before save.
	profile.ExamNameValidator = profileDescExamName.Validators[0].(func(string) error)
	// profileDescTargetScore is the schema descriptor for target_score field.
	profileDescTargetScore := profileFields[2].Descriptor()
	// profile.DefaultTargetScore holds the default value on creation for the target_score field.
	profile.DefaultTargetScore = profileDescTargetScore.Default.(int)
	// profileDescStreakCount is the schema descriptor for streak_count field.
	profileDescStreakCount := profileFields[3].Descriptor()
	// profile.DefaultStreakCount holds the default value on creation for the streak_count field.
	profile.DefaultStreakCount = profileDescStreakCount.Default.(int)
	// profileDescZone is the schema descriptor for zone field.
	profileDescZone := profileFields[4].Descriptor()
	// profile.DefaultZone holds the default value on creation for the zone field.
	profile.DefaultZone = profileDescZone.Default.(string)
	// profileDescExamDate is the schema descriptor for exam_date field.
	profileDescExamDate := profileFields[5].Descriptor()
	// profile.DefaultExamDate holds the default value on creation for the exam_date field.
	profile.DefaultExamDate = profileDescExamDate.Default.(func() time.Time)
	// profileDescGroupID is the schema descriptor for group_id field.
	profileDescGroupID := profileFields[6].Descriptor()
	// profile.DefaultGroupID holds the default value on creation for the group_id field.
	profile.DefaultGroupID = profileDescGroupID.Default.(string)
	// profileDescRegion is the schema descriptor for region field.
	profileDescRegion := profileFields[7].Descriptor()
	// profile.DefaultRegion holds the default value on creation for the region field.
	profile.DefaultRegion = profileDescRegion.Default.(string)
	// profileDescTargetLevel is the schema descriptor for target_level field.
	profileDescTargetLevel := profileFields[8].Descriptor()
	// profile.DefaultTargetLevel holds the default value on creation for the target_level field.
	profile.DefaultTargetLevel = profileDescTargetLevel.Default.(string)
	// profileDescID is the schema descriptor for id field.
	profileDescID := profileFields[0].Descriptor()
	// profile.IDValidator is a validator for the "id" field. It is called by the builders before save.
	profile.IDValidator = profileDescID.Validators[0].(func(string) error)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescPaperID is the schema descriptor for paper_id field.
	questionDescPaperID := questionFields[1].Descriptor()
	// question.PaperIDValidator is a validator for the "paper_id" field. It is called by the builders before save.
	question.PaperIDValidator = questionDescPaperID.Validators[0].(func(string) error)
	// questionDescSection is the schema descriptor for section field.
	questionDescSection := questionFields[3].Descriptor()
	// question.SectionValidator is a validator for the "section" field. It is called by the builders before save.
	question.SectionValidator = questionDescSection.Validators[0].(func(string) error)
	// questionDescText is the schema descriptor for text field.
	questionDescText := questionFields[4].Descriptor()
	// question.TextValidator is a validator for the "text" field. It is called by the builders before save.
	question.TextValidator = questionDescText.Validators[0].(func(string) error)
	// questionDescCorrectAnswer is the schema descriptor for correct_answer field.
	questionDescCorrectAnswer := questionFields[6].Descriptor()
	// question.CorrectAnswerValidator is a validator for the "correct_answer" field. It is called by the builders before save.
	question.CorrectAnswerValidator = questionDescCorrectAnswer.Validators[0].(func(string) error)
	// questionDescVerifiedSource is the schema descriptor for verified_source field.
	questionDescVerifiedSource := questionFields[7].Descriptor()
	// question.DefaultVerifiedSource holds the default value on creation for the verified_source field.
	question.DefaultVerifiedSource = questionDescVerifiedSource.Default.(bool)
	// questionDescTrapExplanation is the schema descriptor for trap_explanation field.
	questionDescTrapExplanation := questionFields[8].Descriptor()
	// question.DefaultTrapExplanation holds the default value on creation for the trap_explanation field.
	question.DefaultTrapExplanation = questionDescTrapExplanation.Default.(string)
	// questionDescID is the schema descriptor for id field.
	questionDescID := questionFields[0].Descriptor()
	// question.IDValidator is a validator for the "id" field. It is called by the builders before save.
	question.IDValidator = questionDescID.Validators[0].(func(string) error)
}
