package zumrails

import (
	"strings"
	"testing"
)

const preScrubbed = `<- "POST /api/authorize HTTP/1.1\r\nContent-Type: application/json\r\n\r\n"
<- "{\"Username\":\"merchant\",\"Password\":\"hunter2\"}"
-> "{\"statusCode\":200,\"isError\":false,\"result\":{\"Token\":\"jwttoken\",\"CustomerId\":\"cust-1\"}}"
<- "GET /api/wallet HTTP/1.1\r\nAuthorization: Bearer jwttoken\r\n\r\n"
<- "{\"Amount\":\"10.00\",\"UserId\":\"user-1\",\"WalletId\":\"wallet-1\",\"FundingSourceId\":\"fs-1\"}"`

func TestScrubRedactsSensitiveFields(t *testing.T) {
	scrubbed := Scrub(preScrubbed)

	for _, secret := range []string{"hunter2", "jwttoken", "cust-1", "user-1", "wallet-1", "fs-1", "merchant"} {
		if strings.Contains(scrubbed, secret) {
			t.Fatalf("scrubbed transcript still contains %q:\n%s", secret, scrubbed)
		}
	}
	if !strings.Contains(scrubbed, "Authorization: Bearer [FILTERED]") {
		t.Fatalf("bearer token not filtered:\n%s", scrubbed)
	}
	if !strings.Contains(scrubbed, `Password\":\"[FILTERED]`) {
		t.Fatalf("password not filtered in place:\n%s", scrubbed)
	}
	// Non-sensitive fields survive.
	if !strings.Contains(scrubbed, `Amount\":\"10.00`) {
		t.Fatalf("amount should be left intact:\n%s", scrubbed)
	}
}

func TestScrubIsIdempotent(t *testing.T) {
	once := Scrub(preScrubbed)
	twice := Scrub(once)
	if once != twice {
		t.Fatalf("scrubbing already-scrubbed text changed it:\nfirst: %s\nsecond: %s", once, twice)
	}
}

func TestScrubPlainJSON(t *testing.T) {
	in := `{"Username":"merchant","Password":"hunter2","Token":"jwt","Memo":"TEST"}`
	got := Scrub(in)
	want := `{"Username":"[FILTERED]","Password":"[FILTERED]","Token":"[FILTERED]","Memo":"TEST"}`
	if got != want {
		t.Fatalf("Scrub(%q) = %q, want %q", in, got, want)
	}
}
