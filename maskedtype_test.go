package gomaskx

import "testing"

func applyType(t *testing.T, mt MaskedType, value string) string {
	t.Helper()
	masked, err := mt.Apply(value)
	if err != nil {
		t.Fatalf("%s.Apply(%q) returned error: %v", mt, value, err)
	}
	return masked
}

func TestMaskedTypeAll(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"abc def", "*** ***"},
		{"sensitive data", "********* ****"},
		{"nodataatall", "***********"},
		{" leading", " *******"},
		{"trailing ", "******** "},
		{"", ""},
		{"   ", ""}, // blank input yields empty output
	}
	for _, tt := range tests {
		if got := applyType(t, MASKED_TYPE_ALL, tt.input); got != tt.expected {
			t.Errorf("ALL(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestMaskedTypeEmail(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"john.doe@example.com", "j*******@e******.com"},
		{"john.doe@gmail.com", "j*******@g****.com"},
		{"test@domain.co.uk", "t***@d********.uk"},
		{"short@ex.co", "s****@e*.co"},
		// Length-1 local part or domain label leaves that side untouched.
		{"a@b.c", "a@b.c"},
		{"user@.com", "u***@.com"},
		// No final dot-segment in the domain, so its middle stays visible.
		{"user@localhost", "u***@localhost"},
		{"@domain.com", "@d*****.com"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := applyType(t, MASKED_TYPE_EMAIL, tt.input); got != tt.expected {
			t.Errorf("EMAIL(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestMaskedTypeDocument(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"123456789", "******789"},
		{"12345678911", "********911"},
		{"DOC123", "***123"},
		{"AB", "AB"},
		{"ABC", "ABC"},
		{"ABCD", "*BCD"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := applyType(t, MASKED_TYPE_DOCUMENT, tt.input); got != tt.expected {
			t.Errorf("DOCUMENT(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestMaskedTypeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Leonardo", "L*****do"},
		{"John", "J*hn"},
		{"John Doe", "J*****oe"},
		{"Test User", "T******er"},
		{"Mary", "M*ry"},
		{"Ed", "Ed"},
		{"Ada", "Ada"},
		{"A", "A"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := applyType(t, MASKED_TYPE_NAME, tt.input); got != tt.expected {
			t.Errorf("NAME(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestMaskedTypeDate(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"2023-10-25", "****-**-25"},
		{"1986-04-08", "****-**-08"},
		{"10/25/2023", "**/**/**23"},
		{"2024.01.05", "****.**.05"},
		// Digit counting crosses non-digit separators, including letters.
		{"01 Jan 2025", "** Jan **25"},
		{"23-Mar-2023", "**-Mar-**23"},
		{"UnstructuredDate12345", "UnstructuredDate***45"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := applyType(t, MASKED_TYPE_DATE, tt.input); got != tt.expected {
			t.Errorf("DATE(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestMaskedTypeAddress(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Rua Flamengo 745, RJ", "*** ******** **5, RJ"},
		{"123 Main Street", "*** **** ***eet"},
		{"123 Main St", "*** ***n St"},
		{"123 Main St, Apt 4B", "*** **** **, **t 4B"},
		{"Short Rd 1", "***** Rd 1"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := applyType(t, MASKED_TYPE_ADDRESS, tt.input); got != tt.expected {
			t.Errorf("ADDRESS(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestMaskedTypeZipCode(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"90210", "***10"},
		{"90210-1234", "*****-**34"},
		{"20720011", "******11"},
		// Fewer than two trailing digits means nothing qualifies.
		{"SW1A 0AA", "SW1A 0AA"},
		{"A1B 2C3", "A*B 2C3"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := applyType(t, MASKED_TYPE_ZIP_CODE, tt.input); got != tt.expected {
			t.Errorf("ZIP_CODE(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestMaskedTypeNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"ID: 123-456", "ID: ***-***"},
		{"Account 9876543210", "Account **********"},
		{"NoDigitsHere", "NoDigitsHere"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := applyType(t, MASKED_TYPE_NUMBER, tt.input); got != tt.expected {
			t.Errorf("NUMBER(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestMaskedTypeTelephone(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"(123) 456-7890", "(***) ***-**90"},
		{"+44 20 7946 0958", "+** ** **** **58"},
		{"1234567890", "********90"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := applyType(t, MASKED_TYPE_TELEPHONE, tt.input); got != tt.expected {
			t.Errorf("TELEPHONE(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestMaskedTypePassword(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"secret123", "s********"},
		{"mypassword", "m*********"},
		{"pw", "p*"},
		{"s", "s"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := applyType(t, MASKED_TYPE_PASSWORD, tt.input); got != tt.expected {
			t.Errorf("PASSWORD(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestMaskedTypeValid(t *testing.T) {
	for mt := range maskedTypeRegex {
		if !mt.Valid() {
			t.Errorf("%s should be valid", mt)
		}
		if mt.Regex() == "" {
			t.Errorf("%s should have a regex", mt)
		}
	}
	if MaskedType("SEKRIT").Valid() {
		t.Error("unknown type should not be valid")
	}
}

func TestMaskedTypeApplyUnknown(t *testing.T) {
	_, err := MaskedType("SEKRIT").Apply("value")
	if err == nil {
		t.Fatal("expected error for unknown masked type")
	}
	if _, ok := err.(*InvalidPatternError); !ok {
		t.Errorf("expected *InvalidPatternError, got %T", err)
	}
}

func TestParseMaskedType(t *testing.T) {
	tests := []struct {
		name     string
		expected MaskedType
		ok       bool
	}{
		{"email", MASKED_TYPE_EMAIL, true},
		{"EMAIL", MASKED_TYPE_EMAIL, true},
		{"zip_code", MASKED_TYPE_ZIP_CODE, true},
		{"", MASKED_TYPE_ALL, true}, // empty defaults to ALL
		{"bogus", "", false},
	}
	for _, tt := range tests {
		got, ok := parseMaskedType(tt.name)
		if ok != tt.ok || got != tt.expected {
			t.Errorf("parseMaskedType(%q) = (%q, %v), want (%q, %v)", tt.name, got, ok, tt.expected, tt.ok)
		}
	}
}
