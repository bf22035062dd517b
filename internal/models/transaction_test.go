package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionTestSuite struct {
	suite.Suite
}

func TestTransactionSuite(t *testing.T) {
	suite.Run(t, new(TransactionTestSuite))
}

func (s *TransactionTestSuite) TestParseDate_AcceptedLayouts() {
	tests := []struct {
		name  string
		value string
		want  time.Time
	}{
		{"iso date", "2024-03-15", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"rfc3339", "2024-03-15T10:30:00Z", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"datetime without zone", "2024-03-15T10:30:00", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"space separated datetime", "2024-03-15 10:30:00", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"us slash date", "03/15/2024", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"short slash date", "3/5/2024", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{"written month", "Mar 15, 2024", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			txn := Transaction{Date: tt.value}
			got, ok := txn.ParseDate()
			s.True(ok)
			s.Equal(tt.want, got)
		})
	}
}

func (s *TransactionTestSuite) TestParseDate_RejectsGarbage() {
	for _, value := range []string{"", "not a date", "2024-13-45", "later"} {
		txn := Transaction{Date: value}
		_, ok := txn.ParseDate()
		s.False(ok, "expected %q to fail parsing", value)
	}
}

func (s *TransactionTestSuite) TestMagnitude_StripsSign() {
	debit := Transaction{Amount: decimal.NewFromFloat(-42.50)}
	credit := Transaction{Amount: decimal.NewFromFloat(42.50)}

	s.True(debit.Magnitude().Equal(decimal.NewFromFloat(42.50)))
	s.True(credit.Magnitude().Equal(decimal.NewFromFloat(42.50)))
}

type CategoryValueTestSuite struct {
	suite.Suite
}

func TestCategoryValueSuite(t *testing.T) {
	suite.Run(t, new(CategoryValueTestSuite))
}

func (s *CategoryValueTestSuite) TestCategoryFromRaw_Scalar() {
	cv := CategoryFromRaw("Groceries")
	s.False(cv.IsAbsent())
	s.Equal("Groceries", cv.Resolve())
}

func (s *CategoryValueTestSuite) TestCategoryFromRaw_OrderedKeepsFirst() {
	cv := CategoryFromRaw([]string{"Food and Drink", "Restaurants", "Fast Food"})
	s.Equal("Food and Drink", cv.Resolve())
}

func (s *CategoryValueTestSuite) TestCategoryFromRaw_UntypedList() {
	cv := CategoryFromRaw([]any{"Travel", "Airlines"})
	s.Equal("Travel", cv.Resolve())
}

func (s *CategoryValueTestSuite) TestCategoryFromRaw_DefaultsToOther() {
	tests := []struct {
		name  string
		value any
	}{
		{"nil value", nil},
		{"number", 42.0},
		{"empty string", ""},
		{"empty list", []string{}},
		{"list of non strings", []any{1, 2}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.Equal(CategoryOther, CategoryFromRaw(tt.value).Resolve())
		})
	}
}

func (s *CategoryValueTestSuite) TestFindInstitution() {
	ins, ok := FindInstitution("ins_sandbox_1")
	s.True(ok)
	s.Equal("First Sandbox Bank", ins.Name)

	_, ok = FindInstitution("ins_nowhere")
	s.False(ok)
}
