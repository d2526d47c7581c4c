package db

import (
	"database/sql/driver"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

type SemesterEnum string

const (
	SemesterEnumFall   SemesterEnum = "Fall"
	SemesterEnumWinter SemesterEnum = "Winter"
	SemesterEnumSpring SemesterEnum = "Spring"
	SemesterEnumSummer SemesterEnum = "Summer"
)

func (e *SemesterEnum) Scan(src interface{}) error {
	switch s := src.(type) {
	case []byte:
		*e = SemesterEnum(s)
	case string:
		*e = SemesterEnum(s)
	default:
		return fmt.Errorf("unsupported scan type for SemesterEnum: %T", src)
	}
	return nil
}

type NullSemesterEnum struct {
	SemesterEnum SemesterEnum `json:"semester_enum"`
	Valid        bool         `json:"valid"` // Valid is true if SemesterEnum is not NULL
}

// Scan implements the Scanner interface.
func (ns *NullSemesterEnum) Scan(value interface{}) error {
	if value == nil {
		ns.SemesterEnum, ns.Valid = "", false
		return nil
	}
	ns.Valid = true
	return ns.SemesterEnum.Scan(value)
}

// Value implements the driver Valuer interface.
func (ns NullSemesterEnum) Value() (driver.Value, error) {
	if !ns.Valid {
		return nil, nil
	}
	return string(ns.SemesterEnum), nil
}

func (e SemesterEnum) Valid() bool {
	switch e {
	case SemesterEnumFall,
		SemesterEnumWinter,
		SemesterEnumSpring,
		SemesterEnumSummer:
		return true
	}
	return false
}

func AllSemesterEnumValues() []SemesterEnum {
	return []SemesterEnum{
		SemesterEnumFall,
		SemesterEnumWinter,
		SemesterEnumSpring,
		SemesterEnumSummer,
	}
}

type Course struct {
	CourseID     int32        `json:"course_id"`
	SubjectID    int32        `json:"subject_id"`
	CourseNumber string       `json:"course_number"`
	Semester     SemesterEnum `json:"semester"`
	Year         int32        `json:"year"`
}

type Credential struct {
	Username          string `json:"username"`
	EncryptedPassword string `json:"encrypted_password"`
	StudentID         int32  `json:"student_id"`
}

type Student struct {
	StudentID       int32       `json:"student_id"`
	StudFirstName   string      `json:"stud_first_name"`
	StudLastName    string      `json:"stud_last_name"`
	StudPhoneNumber pgtype.Text `json:"stud_phone_number"`
	StudEmail       pgtype.Text `json:"stud_email"`
}

type StudentSchedule struct {
	StudentID int32 `json:"student_id"`
	CourseID  int32 `json:"course_id"`
}

type Subject struct {
	SubjectID   int32  `json:"subject_id"`
	SubjectCode string `json:"subject_code"`
}
