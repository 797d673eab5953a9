// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/adityakr/prepdrill/ent/profile"
)

// Profile is the model entity for the Profile schema.
type Profile struct {
	config `json:"-"`
	// ID of the ent.
	// UUID
	ID string `json:"id,omitempty"`
	// e.g. UPSC CSE, SSLC, CBSE Class 12
	ExamName string `json:"exam_name,omitempty"`
	// TargetScore holds the value of the "target_score" field.
	TargetScore int `json:"target_score,omitempty"`
	// Consecutive days with a submitted paper
	StreakCount int `json:"streak_count,omitempty"`
	// Safe, Borderline, or Danger
	Zone string `json:"zone,omitempty"`
	// ExamDate holds the value of the "exam_date" field.
	ExamDate time.Time `json:"exam_date,omitempty"`
	// Study group code; empty when solo
	GroupID string `json:"group_id,omitempty"`
	// Region holds the value of the "region" field.
	Region string `json:"region,omitempty"`
	// National, State, or Board
	TargetLevel  string `json:"target_level,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Profile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case profile.FieldTargetScore, profile.FieldStreakCount:
			values[i] = new(sql.NullInt64)
		case profile.FieldID, profile.FieldExamName, profile.FieldZone, profile.FieldGroupID, profile.FieldRegion, profile.FieldTargetLevel:
			values[i] = new(sql.NullString)
		case profile.FieldExamDate:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Profile fields.
func (_m *Profile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case profile.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case profile.FieldExamName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field exam_name", values[i])
			} else if value.Valid {
				_m.ExamName = value.String
			}
		case profile.FieldTargetScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field target_score", values[i])
			} else if value.Valid {
				_m.TargetScore = int(value.Int64)
			}
		case profile.FieldStreakCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field streak_count", values[i])
			} else if value.Valid {
				_m.StreakCount = int(value.Int64)
			}
		case profile.FieldZone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field zone", values[i])
			} else if value.Valid {
				_m.Zone = value.String
			}
		case profile.FieldExamDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field exam_date", values[i])
			} else if value.Valid {
				_m.ExamDate = value.Time
			}
		case profile.FieldGroupID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field group_id", values[i])
			} else if value.Valid {
				_m.GroupID = value.String
			}
		case profile.FieldRegion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field region", values[i])
			} else if value.Valid {
				_m.Region = value.String
			}
		case profile.FieldTargetLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_level", values[i])
			} else if value.Valid {
				_m.TargetLevel = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Profile.
// This includes values selected through modifiers, order, etc.
func (_m *Profile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Profile.
// Note that you need to call Profile.Unwrap() before calling this method if this Profile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Profile) Update() *ProfileUpdateOne {
	return NewProfileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Profile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Profile) Unwrap() *Profile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Profile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Profile) String() string {
	var builder strings.Builder
	builder.WriteString("Profile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("exam_name=")
	builder.WriteString(_m.ExamName)
	builder.WriteString(", ")
	builder.WriteString("target_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.TargetScore))
	builder.WriteString(", ")
	builder.WriteString("streak_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.StreakCount))
	builder.WriteString(", ")
	builder.WriteString("zone=")
	builder.WriteString(_m.Zone)
	builder.WriteString(", ")
	builder.WriteString("exam_date=")
	builder.WriteString(_m.ExamDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("group_id=")
	builder.WriteString(_m.GroupID)
	builder.WriteString(", ")
	builder.WriteString("region=")
	builder.WriteString(_m.Region)
	builder.WriteString(", ")
	builder.WriteString("target_level=")
	builder.WriteString(_m.TargetLevel)
	builder.WriteByte(')')
	return builder.String()
}

// Profiles is a parsable slice of Profile.
type Profiles []*Profile
