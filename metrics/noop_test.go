// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package metrics

import (
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNoopMetrics(t *testing.T) {
	server := httptest.NewServer(HTTPHandler())

	t.Cleanup(func() {
		server.Close()
	})

	count1 := Counter("count1")
	count1.Add(1)
	for range rand.N(100) + 1 {
		Counter("count2").Add(1)
	}

	hist := Histogram("hist1", nil)
	countVect := CounterVec("countVec1", []string{"zeroOrOne"})
	gauge := LazyLoadGauge("gauge1")
	for i := range rand.N(100) + 1 {
		hist.Observe(int64(i))
		countVect.AddWithLabel(int64(i), map[string]string{"thisIsNonsense": "butDoesntBreak"})
		gauge().Set(int64(i))
	}

	resp, err := http.Get(server.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
