// Code generated by ent, DO NOT EDIT.

package profile

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the profile type in the database.
	Label = "profile"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldExamName holds the string denoting the exam_name field in the database.
	FieldExamName = "exam_name"
	// FieldTargetScore holds the string denoting the target_score field in the database.
	FieldTargetScore = "target_score"
	// FieldStreakCount holds the string denoting the streak_count field in the database.
	FieldStreakCount = "streak_count"
	// FieldZone holds the string denoting the zone field in the database.
	FieldZone = "zone"
	// FieldExamDate holds the string denoting the exam_date field in the database.
	FieldExamDate = "exam_date"
	// FieldGroupID holds the string denoting the group_id field in the database.
	FieldGroupID = "group_id"
	// FieldRegion holds the string denoting the region field in the database.
	FieldRegion = "region"
	// FieldTargetLevel holds the string denoting the target_level field in the database.
	FieldTargetLevel = "target_level"
	// Table holds the table name of the profile in the database.
	Table = "profiles"
)

// Columns holds all SQL columns for profile fields.
var Columns = []string{
	FieldID,
	FieldExamName,
	FieldTargetScore,
	FieldStreakCount,
	FieldZone,
	FieldExamDate,
	FieldGroupID,
	FieldRegion,
	FieldTargetLevel,
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
	// ExamNameValidator is a validator for the "exam_name" field. It is called by the builders before save.
	ExamNameValidator func(string) error
	// DefaultTargetScore holds the default value on creation for the "target_score" field.
	DefaultTargetScore int
	// DefaultStreakCount holds the default value on creation for the "streak_count" field.
	DefaultStreakCount int
	// DefaultZone holds the default value on creation for the "zone" field.
	DefaultZone string
	// DefaultExamDate holds the default value on creation for the "exam_date" field.
	DefaultExamDate func() time.Time
	// DefaultGroupID holds the default value on creation for the "group_id" field.
	DefaultGroupID string
	// DefaultRegion holds the default value on creation for the "region" field.
	DefaultRegion string
	// DefaultTargetLevel holds the default value on creation for the "target_level" field.
	DefaultTargetLevel string
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(string) error
)

// OrderOption defines the ordering options for the Profile queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByExamName orders the results by the exam_name field.
func ByExamName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExamName, opts...).ToFunc()
}

// ByTargetScore orders the results by the target_score field.
func ByTargetScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetScore, opts...).ToFunc()
}

// ByStreakCount orders the results by the streak_count field.
func ByStreakCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreakCount, opts...).ToFunc()
}

// ByZone orders the results by the zone field.
func ByZone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldZone, opts...).ToFunc()
}

// ByExamDate orders the results by the exam_date field.
func ByExamDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExamDate, opts...).ToFunc()
}

// ByGroupID orders the results by the group_id field.
func ByGroupID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGroupID, opts...).ToFunc()
}

// ByRegion orders the results by the region field.
func ByRegion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRegion, opts...).ToFunc()
}

// ByTargetLevel orders the results by the target_level field.
func ByTargetLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetLevel, opts...).ToFunc()
}
