package hashid

import (
	"bytes"
	"encoding/gob"
	"math"
	"testing"
)

// idTestID is a sample ID for codec testing
var idTestID = ID(1234567890123456789)
var idTestBytes = idTestID.Bytes()

func TestFromBytes(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		got, err := FromBytes(idTestBytes)
		if err != nil {
			t.Fatal(err)
		}
		if got != idTestID {
			t.Fatalf("FromBytes(%x) = %v, want %v", idTestBytes, got, idTestID)
		}
	})
	t.Run("Invalid", func(t *testing.T) {
		invalid := [][]byte{
			{},
			{1, 2, 3},
			{1, 2, 3, 4, 5, 6, 7},
			{1, 2, 3, 4, 5, 6, 7, 8, 9},
		}
		for _, b := range invalid {
			got, err := FromBytes(b)
			if err == nil {
				t.Fatalf("FromBytes(%x): want err != nil, got %v", b, got)
			}
		}
	})
}

func TestFromBytesOrNil(t *testing.T) {
	t.Run("Invalid", func(t *testing.T) {
		b := []byte{4, 8, 15}
		got := FromBytesOrNil(b)
		if got != Nil {
			t.Errorf("FromBytesOrNil(%x): got %v, want %v", b, got, Nil)
		}
	})
	t.Run("Valid", func(t *testing.T) {
		got := FromBytesOrNil(idTestBytes)
		if got != idTestID {
			t.Errorf("FromBytesOrNil(%x): got %v, want %v", idTestBytes, got, idTestID)
		}
	})
}

func TestParse(t *testing.T) {
	// Parse uses DefaultFormat (hash by default)
	s := idTestID.Format(FormatHash)
	got, err := Parse(s)
	if err != nil {
		t.Fatal(err)
	}
	if got != idTestID {
		t.Errorf("Parse(%q): got %v, want %v", s, got, idTestID)
	}
}

func TestParseHash(t *testing.T) {
	s := idTestID.Format(FormatHash)
	got, err := ParseHash(s)
	if err != nil {
		t.Fatal(err)
	}
	if got != idTestID {
		t.Errorf("ParseHash(%q): got %v, want %v", s, got, idTestID)
	}
}

func TestParseHashMultiNumber(t *testing.T) {
	// A hash of more than one integer is not an ID.
	s := DefaultCodec.Encode(1, 2)
	if got, err := ParseHash(s); err == nil {
		t.Errorf("ParseHash(%q): want err != nil, got %v", s, got)
	}
}

func TestParseHexFormat(t *testing.T) {
	s := idTestID.Format(FormatHex)
	got, err := ParseHex(s)
	if err != nil {
		t.Fatal(err)
	}
	if got != idTestID {
		t.Errorf("ParseHex(%q): got %v, want %v", s, got, idTestID)
	}
}

func TestParseDecimal(t *testing.T) {
	s := idTestID.Format(FormatDecimal)
	got, err := ParseDecimal(s)
	if err != nil {
		t.Fatal(err)
	}
	if got != idTestID {
		t.Errorf("ParseDecimal(%q): got %v, want %v", s, got, idTestID)
	}
}

func TestParseEmpty(t *testing.T) {
	fns := []struct {
		name string
		fn   func(string) (ID, error)
	}{
		{"ParseHash", ParseHash},
		{"ParseHex", ParseHex},
		{"ParseDecimal", ParseDecimal},
	}
	for _, tt := range fns {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.fn("")
			if err == nil {
				t.Errorf("%s(empty): want err != nil", tt.name)
			}
		})
	}
}

func TestFromStringOrNil(t *testing.T) {
	t.Run("Invalid", func(t *testing.T) {
		got := FromStringOrNil("invalid!!!")
		if got != Nil {
			t.Errorf("FromStringOrNil(invalid): got %v, want Nil", got)
		}
	})
	t.Run("Valid", func(t *testing.T) {
		s := idTestID.Format(FormatHash)
		got := FromStringOrNil(s)
		if got != idTestID {
			t.Errorf("FromStringOrNil(%q): got %v, want %v", s, got, idTestID)
		}
	})
}

func TestFromUint64(t *testing.T) {
	got := FromUint64(1234567890123456789)
	if got != idTestID {
		t.Errorf("FromUint64: got %v, want %v", got, idTestID)
	}
}

func TestIDParseMethod(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		var id ID
		err := id.Parse(idTestID.Format(FormatHash))
		if err != nil {
			t.Fatal(err)
		}
		if id != idTestID {
			t.Errorf("ID.Parse: got %v, want %v", id, idTestID)
		}
	})
	t.Run("Invalid", func(t *testing.T) {
		var id ID
		err := id.Parse("invalid!!!")
		if err == nil {
			t.Error("ID.Parse(invalid): want err != nil")
		}
	})
}

func TestMarshalBinary(t *testing.T) {
	got, err := idTestID.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, idTestBytes) {
		t.Fatalf("%v.MarshalBinary() = %x, want %x", idTestID, got, idTestBytes)
	}
}

func TestUnmarshalBinary(t *testing.T) {
	var got ID
	err := got.UnmarshalBinary(idTestBytes)
	if err != nil {
		t.Fatal(err)
	}
	if got != idTestID {
		t.Errorf("UnmarshalBinary: got %v, want %v", got, idTestID)
	}
}

func TestGobEncode(t *testing.T) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(idTestID); err != nil {
		t.Fatal(err)
	}

	var got ID
	dec := gob.NewDecoder(&buf)
	if err := dec.Decode(&got); err != nil {
		t.Fatal(err)
	}

	if got != idTestID {
		t.Errorf("Gob roundtrip: got %v, want %v", got, idTestID)
	}
}

func TestMarshalText(t *testing.T) {
	got, err := idTestID.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	want := []byte(idTestID.String())
	if !bytes.Equal(got, want) {
		t.Errorf("%v.MarshalText(): got %s, want %s", idTestID, got, want)
	}
}

func TestUnmarshalText(t *testing.T) {
	// UnmarshalText uses Parse which uses DefaultFormat (hash)
	var got ID
	err := got.UnmarshalText([]byte(idTestID.Format(FormatHash)))
	if err != nil {
		t.Fatal(err)
	}
	if got != idTestID {
		t.Errorf("UnmarshalText: got %v, want %v", got, idTestID)
	}
}

func TestMarshalJSON(t *testing.T) {
	got, err := idTestID.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `"` + idTestID.String() + `"`
	if string(got) != want {
		t.Errorf("MarshalJSON: got %s, want %s", got, want)
	}
}

func TestUnmarshalJSON(t *testing.T) {
	t.Run("String", func(t *testing.T) {
		var got ID
		err := got.UnmarshalJSON([]byte(`"` + idTestID.String() + `"`))
		if err != nil {
			t.Fatal(err)
		}
		if got != idTestID {
			t.Errorf("UnmarshalJSON(string): got %v, want %v", got, idTestID)
		}
	})
	t.Run("Numeric", func(t *testing.T) {
		var got ID
		err := got.UnmarshalJSON([]byte("1234567890123456789"))
		if err != nil {
			t.Fatal(err)
		}
		if got != idTestID {
			t.Errorf("UnmarshalJSON(numeric): got %v, want %v", got, idTestID)
		}
	})
	t.Run("Null", func(t *testing.T) {
		var got ID
		err := got.UnmarshalJSON([]byte("null"))
		if err != nil {
			t.Fatal(err)
		}
		if got != Nil {
			t.Errorf("UnmarshalJSON(null): got %v, want Nil", got)
		}
	})
	t.Run("Invalid", func(t *testing.T) {
		var got ID
		err := got.UnmarshalJSON([]byte("not-json"))
		if err == nil {
			t.Errorf("UnmarshalJSON(invalid): want err, got %v", got)
		}
	})
}

func TestIDFormat(t *testing.T) {
	tests := []struct {
		format Format
		name   string
		parse  func(string) (ID, error)
	}{
		{FormatHash, "Hash", ParseHash},
		{FormatHex, "Hex", ParseHex},
		{FormatDecimal, "Decimal", ParseDecimal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := idTestID.Format(tt.format)
			if s == "" {
				t.Errorf("Format(%s) returned empty string", tt.format)
			}
			// Verify roundtrip with matching parse function
			got, err := tt.parse(s)
			if err != nil {
				t.Errorf("%s parse(%q) failed: %v", tt.name, s, err)
			}
			if got != idTestID {
				t.Errorf("Roundtrip failed: got %v, want %v", got, idTestID)
			}
		})
	}
}

func TestIDValueOverflow(t *testing.T) {
	id := ID(math.MaxUint64)
	if v, err := id.Value(); err == nil {
		t.Errorf("Value() of %d: want err != nil, got %v", uint64(id), v)
	}
}

func TestSetSalt(t *testing.T) {
	orig := DefaultCodec
	defer func() { DefaultCodec = orig }()

	unsalted := idTestID.String()
	SetSalt(testSalt)
	salted := idTestID.String()
	if salted == unsalted {
		t.Error("SetSalt did not change the hash representation")
	}
	got, err := Parse(salted)
	if err != nil {
		t.Fatal(err)
	}
	if got != idTestID {
		t.Errorf("Parse after SetSalt: got %v, want %v", got, idTestID)
	}
}

func TestSetCodec(t *testing.T) {
	orig := DefaultCodec
	defer func() { DefaultCodec = orig }()

	SetCodec(NewCodec(testSalt, 16, DefaultAlphabet))
	s := idTestID.String()
	if len(s) < 16 {
		t.Errorf("String() length %d with minimum 16", len(s))
	}
	got, err := Parse(s)
	if err != nil {
		t.Fatal(err)
	}
	if got != idTestID {
		t.Errorf("Parse after SetCodec: got %v, want %v", got, idTestID)
	}

	t.Run("Nil", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("SetCodec(nil) did not panic")
			}
		}()
		SetCodec(nil)
	})
}

func TestMust(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		got := Must(FromString(idTestID.Format(FormatHash)))
		if got != idTestID {
			t.Errorf("Must: got %v, want %v", got, idTestID)
		}
	})
	t.Run("Panic", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("Must did not panic on error")
			}
		}()
		Must(FromString("invalid!!!"))
	})
}

func BenchmarkFromString(b *testing.B) {
	b.Run("Decimal", func(b *testing.B) {
		DefaultFormat = FormatDecimal
		defer func() { DefaultFormat = FormatHash }()
		for i := 0; i < b.N; i++ {
			FromString("1234567890123456789")
		}
	})
	b.Run("Hash", func(b *testing.B) {
		s := idTestID.Format(FormatHash)
		for i := 0; i < b.N; i++ {
			FromString(s)
		}
	})
}

func BenchmarkIDFormat(b *testing.B) {
	b.Run("Hash", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			idTestID.Format(FormatHash)
		}
	})
	b.Run("Decimal", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			idTestID.Format(FormatDecimal)
		}
	})
}
