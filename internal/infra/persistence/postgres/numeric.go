package postgres

import "strconv"

// Monetary columns are numeric in the database and scan into strings. The
// mappers parse them on read and format them on write so the domain only ever
// sees float64.

func parseNumeric(s string) float64 {
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}

	return f
}

func parseNumericPtr(s *string) *float64 {
	if s == nil {
		return nil
	}
	f := parseNumeric(*s)

	return &f
}

func formatNumeric(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

func formatNumericPtr(f *float64) *string {
	if f == nil {
		return nil
	}
	s := formatNumeric(*f)

	return &s
}

func strPtrOrNil(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func derefStr(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
