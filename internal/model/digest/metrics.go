package digest

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var dispatchTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "ledger",
		Subsystem: "digest",
		Name:      "dispatch_total",
	},
	[]string{"success"},
)

func observeDispatch(success bool) {
	dispatchTotal.WithLabelValues(strconv.FormatBool(success)).Inc()
}
