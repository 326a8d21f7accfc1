package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddlewareLabelsByRouteTemplate(t *testing.T) {
	r := mux.NewRouter()
	r.Use(Middleware)
	r.HandleFunc("/usuarios/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/usuarios/{id}", "418"))

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/usuarios/42", nil))

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/usuarios/{id}", "418"))
	assert.Equal(t, before+1, after)
}

func TestRecordInvite(t *testing.T) {
	before := testutil.ToFloat64(invitesTotal.WithLabelValues(InviteDropped))
	RecordInvite(InviteDropped)
	assert.Equal(t, before+1, testutil.ToFloat64(invitesTotal.WithLabelValues(InviteDropped)))
}
