package v1

import (
	"bytes"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"watchdog/api/internal/domain"
	"watchdog/api/internal/service"
	"watchdog/pkg/utils"

	"github.com/brianvoe/gofakeit/v7"
)

type fakeQrCodes struct {
	image []byte
}

func (f *fakeQrCodes) New(content string) (string, error) {
	return base64.RawStdEncoding.EncodeToString(f.image), nil
}

func (f *fakeQrCodes) FindOrNew(content string) (string, error) {
	return f.New(content)
}

func postCharityNew(r http.Handler, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/charity/new", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCharityCreate(t *testing.T) {
	charity := &domain.Charities{
		CharityID:      gofakeit.UUID(),
		Name:           "Sea Shepherd",
		WalletAddress:  "0x8626f6940E2eb28930eFb4CeF49B2d1F2C9C1199",
		SubscriptionID: "sub-1",
	}
	r := testRouter(&service.Services{
		Charities: &fakeCharities{charity: charity},
		QrCodes:   &fakeQrCodes{image: []byte("png")},
	})

	w := postCharityNew(r, `{"name":"Sea Shepherd","description":"ocean conservation","wallet_address":"0x8626f6940E2eb28930eFb4CeF49B2d1F2C9C1199"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", w.Code, w.Body.String())
	}

	res, err := utils.Unmarshal[responseCharityCreated](w.Body.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if res.Charity.Id != charity.CharityID || res.Charity.SubscriptionId != "sub-1" {
		t.Fatalf("unexpected response: %+v", res.Charity)
	}
	if res.Charity.QrCode == "" {
		t.Fatal("qr code url missing")
	}
}

func TestCharityCreateValidation(t *testing.T) {
	r := testRouter(&service.Services{
		Charities: &fakeCharities{},
		QrCodes:   &fakeQrCodes{},
	})

	cases := []string{
		`{not json`,
		`{"description":"no name","wallet_address":"0x8626f6940E2eb28930eFb4CeF49B2d1F2C9C1199"}`,
		`{"name":"a","description":"no wallet"}`,
		`{"name":"a","wallet_address":"not-an-address"}`,
		`{"name":"a","wallet_address":"0x1234"}`,
	}
	for _, body := range cases {
		w := postCharityNew(r, body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %q: got %d, want 400", body, w.Code)
		}
	}
}

func TestCharityCreateErrorStatuses(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{domain.ErrDuplicateWallet, http.StatusConflict},
		{domain.ErrSubscriptionFailed, http.StatusBadGateway},
		{domain.ErrPersistenceFailed, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		r := testRouter(&service.Services{
			Charities: &fakeCharities{err: tc.err},
			QrCodes:   &fakeQrCodes{},
		})

		w := postCharityNew(r, `{"name":"a","wallet_address":"0x8626f6940E2eb28930eFb4CeF49B2d1F2C9C1199"}`)
		if w.Code != tc.want {
			t.Fatalf("%v: got %d, want %d", tc.err, w.Code, tc.want)
		}
	}
}

func TestCharityTransactions(t *testing.T) {
	charity := &domain.Charities{CharityID: "c-1", WalletAddress: "0xABC", SubscriptionID: "sub-1"}
	r := testRouter(&service.Services{
		Charities: &fakeCharities{charity: charity},
		Donations: &fakeDonations{},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/charity/c-1", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d", w.Code)
	}

	res, err := utils.Unmarshal[responseTransactionList](w.Body.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if res.Error {
		t.Fatal("error flag set")
	}
	if res.Data == nil {
		t.Fatal("data must be an empty list, not null")
	}
}

func TestCharityTransactionsNotFound(t *testing.T) {
	r := testRouter(&service.Services{
		Charities: &fakeCharities{err: domain.ErrCharityNotFound},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/charity/ghost", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want 404", w.Code)
	}
}

func TestCharityQrCode(t *testing.T) {
	charity := &domain.Charities{CharityID: "c-1", WalletAddress: "0xABC", SubscriptionID: "sub-1"}
	r := testRouter(&service.Services{
		Charities: &fakeCharities{charity: charity},
		QrCodes:   &fakeQrCodes{image: []byte("png bytes")},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/charity/c-1/qr-code", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d", w.Code)
	}
	if w.Header().Get("Content-Type") != "image/png" {
		t.Fatalf("content type: got %s", w.Header().Get("Content-Type"))
	}
	if !bytes.Equal(w.Body.Bytes(), []byte("png bytes")) {
		t.Fatal("image bytes mangled")
	}
}
