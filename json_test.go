package blob_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/zoobzio/blob"
)

type jsonFixture struct {
	Payload blob.Blob[blob.Standard] `json:"payload"`
}

func TestJSON_Marshal(t *testing.T) {
	data, err := json.Marshal(jsonFixture{Payload: blob.FromBytes[blob.Standard](sample)})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"payload":"AQIDBAU="}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}

func TestJSON_RoundTrip(t *testing.T) {
	original := jsonFixture{Payload: blob.FromBytes[blob.Standard](sample)}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded jsonFixture
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !blob.Equal(original.Payload, decoded.Payload) {
		t.Errorf("round trip = %v, want %v", decoded.Payload.Bytes(), sample)
	}
}

func TestJSON_ShapeDispatch(t *testing.T) {
	var fromString jsonFixture
	if err := json.Unmarshal([]byte(`{"payload": "AQIDBAU="}`), &fromString); err != nil {
		t.Fatalf("Unmarshal(string) error = %v", err)
	}

	var fromSeq jsonFixture
	if err := json.Unmarshal([]byte(`{"payload": [1, 2, 3, 4, 5]}`), &fromSeq); err != nil {
		t.Fatalf("Unmarshal(sequence) error = %v", err)
	}

	if !blob.Equal(fromString.Payload, fromSeq.Payload) {
		t.Errorf("string form = %v, sequence form = %v, want equal",
			fromString.Payload.Bytes(), fromSeq.Payload.Bytes())
	}
}

func TestJSON_SequenceOverflow(t *testing.T) {
	var fixture jsonFixture
	err := json.Unmarshal([]byte(`{"payload": [1, 2, 3000, 4, 5]}`), &fixture)
	if err == nil {
		t.Fatal("Unmarshal() should reject elements that do not fit in a byte")
	}
	if !errors.Is(err, blob.ErrByteRange) {
		t.Errorf("Unmarshal() error = %v, want ErrByteRange", err)
	}

	var rangeErr *blob.RangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("Unmarshal() error = %T, want *blob.RangeError", err)
	}
	if rangeErr.Index != 2 || rangeErr.Value != 3000 {
		t.Errorf("RangeError = {Index: %d, Value: %d}, want {Index: 2, Value: 3000}", rangeErr.Index, rangeErr.Value)
	}
}

func TestJSON_SequenceNegative(t *testing.T) {
	var fixture jsonFixture
	err := json.Unmarshal([]byte(`{"payload": [1, -2]}`), &fixture)
	if !errors.Is(err, blob.ErrByteRange) {
		t.Errorf("Unmarshal() error = %v, want ErrByteRange", err)
	}
}

func TestJSON_InvalidBase64(t *testing.T) {
	var fixture jsonFixture
	err := json.Unmarshal([]byte(`{"payload": "!!!"}`), &fixture)
	if !errors.Is(err, blob.ErrDecode) {
		t.Errorf("Unmarshal() error = %v, want ErrDecode", err)
	}
}

func TestJSON_WrongShape(t *testing.T) {
	var fixture jsonFixture
	err := json.Unmarshal([]byte(`{"payload": true}`), &fixture)
	if err == nil {
		t.Fatal("Unmarshal() should reject non-string, non-sequence values")
	}
	if !strings.Contains(err.Error(), "a base64-encoded string or a sequence of byte values") {
		t.Errorf("Unmarshal() error = %q, want expected-shape description", err)
	}
}

func TestJSON_Null(t *testing.T) {
	fixture := jsonFixture{Payload: blob.FromBytes[blob.Standard](sample)}
	if err := json.Unmarshal([]byte(`{"payload": null}`), &fixture); err != nil {
		t.Fatalf("Unmarshal(null) error = %v", err)
	}
	if !blob.Equal(fixture.Payload, blob.FromBytes[blob.Standard](sample)) {
		t.Error("Unmarshal(null) should leave the value untouched")
	}
}

func TestJSON_URLSafe(t *testing.T) {
	var fixture struct {
		Payload blob.Blob[blob.URLSafeNoPad] `json:"payload"`
	}
	if err := json.Unmarshal([]byte(`{"payload": "-_8"}`), &fixture); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	want := []byte{0xFB, 0xFF}
	if !blob.Equal(fixture.Payload, blob.FromBytes[blob.URLSafeNoPad](want)) {
		t.Errorf("Unmarshal() = %v, want %v", fixture.Payload.Bytes(), want)
	}
}

func TestJSON_EmptySequence(t *testing.T) {
	var fixture jsonFixture
	if err := json.Unmarshal([]byte(`{"payload": []}`), &fixture); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if fixture.Payload.Len() != 0 {
		t.Errorf("Unmarshal([]) Len() = %d, want 0", fixture.Payload.Len())
	}
}
