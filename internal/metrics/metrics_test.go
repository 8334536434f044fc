package metrics

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/tags", "200"))
	RecordAPIRequest(http.MethodGet, "/api/tags", http.StatusOK, 10*time.Millisecond)
	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/tags", "200"))
	assert.Equal(t, before+1, after)
}

func TestRecordShoppingList(t *testing.T) {
	okBefore := testutil.ToFloat64(ShoppingListsRendered.WithLabelValues("pdf", "ok"))
	errBefore := testutil.ToFloat64(ShoppingListsRendered.WithLabelValues("pdf", "error"))

	RecordShoppingList("pdf", 3, nil)
	RecordShoppingList("pdf", 0, errors.New("font"))

	assert.Equal(t, okBefore+1, testutil.ToFloat64(ShoppingListsRendered.WithLabelValues("pdf", "ok")))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(ShoppingListsRendered.WithLabelValues("pdf", "error")))
}
