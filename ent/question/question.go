// Code generated by ent, DO NOT EDIT.

package question

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the question type in the database.
	Label = "question"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPaperID holds the string denoting the paper_id field in the database.
	FieldPaperID = "paper_id"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// FieldSection holds the string denoting the section field in the database.
	FieldSection = "section"
	// FieldText holds the string denoting the text field in the database.
	FieldText = "text"
	// FieldOptions holds the string denoting the options field in the database.
	FieldOptions = "options"
	// FieldCorrectAnswer holds the string denoting the correct_answer field in the database.
	FieldCorrectAnswer = "correct_answer"
	// FieldVerifiedSource holds the string denoting the verified_source field in the database.
	FieldVerifiedSource = "verified_source"
	// FieldTrapExplanation holds the string denoting the trap_explanation field in the database.
	FieldTrapExplanation = "trap_explanation"
	// Table holds the table name of the question in the database.
	Table = "questions"
)

// Columns holds all SQL columns for question fields.
var Columns = []string{
	FieldID,
	FieldPaperID,
	FieldPosition,
	FieldSection,
	FieldText,
	FieldOptions,
	FieldCorrectAnswer,
	FieldVerifiedSource,
	FieldTrapExplanation,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// PaperIDValidator is a validator for the "paper_id" field. It is called by the builders before save.
	PaperIDValidator func(string) error
	// SectionValidator is a validator for the "section" field. It is called by the builders before save.
	SectionValidator func(string) error
	// TextValidator is a validator for the "text" field. It is called by the builders before save.
	TextValidator func(string) error
	// CorrectAnswerValidator is a validator for the "correct_answer" field. It is called by the builders before save.
	CorrectAnswerValidator func(string) error
	// DefaultVerifiedSource holds the default value on creation for the "verified_source" field.
	DefaultVerifiedSource bool
	// DefaultTrapExplanation holds the default value on creation for the "trap_explanation" field.
	DefaultTrapExplanation string
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(string) error
)

// OrderOption defines the ordering options for the Question queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPaperID orders the results by the paper_id field.
func ByPaperID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaperID, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// BySection orders the results by the section field.
func BySection(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSection, opts...).ToFunc()
}

// ByText orders the results by the text field.
func ByText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText, opts...).ToFunc()
}

// ByCorrectAnswer orders the results by the correct_answer field.
func ByCorrectAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectAnswer, opts...).ToFunc()
}

// ByVerifiedSource orders the results by the verified_source field.
func ByVerifiedSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerifiedSource, opts...).ToFunc()
}

// ByTrapExplanation orders the results by the trap_explanation field.
func ByTrapExplanation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrapExplanation, opts...).ToFunc()
}
