package milsymbol

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/OCAP2/milsymbol/pkg/milsymbol"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}
