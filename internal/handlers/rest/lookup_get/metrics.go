package lookup_get

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var LookupRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "lookup_requests_total",
		Help: "Total number of public lookup requests by outcome",
	},
	[]string{"result"},
)

const (
	resultDeliverable    = "deliverable"
	resultNotDeliverable = "not_deliverable"
	resultInvalidPincode = "invalid_pincode"
	resultMissingShop    = "missing_shop"
	resultError          = "error"
)
