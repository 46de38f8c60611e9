package domain

// Field ids read by the hydrological performance simulation.
const (
	FieldPrecipitation      = "precipitation"
	FieldEvapotranspiration = "evapotranspiration"
	FieldFlowPipe1          = "flowPipe1"
	FieldFlowPipe2          = "flowPipe2"
	FieldFloodEvents        = "floodEvents"
	FieldTotalTime          = "totalTime"
	FieldInstantaneousFlow  = "instantaneousFlow"
)

// Runoff is precipitation minus evapotranspiration.
func Runoff(precipitation, evapotranspiration float64) float64 {
	return precipitation - evapotranspiration
}

// PipeFlowRatio compares the flow in two pipes.
func PipeFlowRatio(flowPipe1, flowPipe2 float64) float64 {
	return flowPipe1 / flowPipe2
}

// FloodFrequency is flood events per unit of total time.
func FloodFrequency(floodEvents, totalTime float64) float64 {
	return floodEvents / totalTime
}

// InflowOutflow passes the instantaneous flow through unchanged.
func InflowOutflow(instantaneousFlow float64) float64 {
	return instantaneousFlow
}

// HydrologicalResult holds the simulation outputs ready for display.
type HydrologicalResult struct {
	Runoff         string
	PipeFlowRatio  string
	FloodFrequency string
	InflowOutflow  string
}

// SimulateHydrologicalPerformance reads the seven hydrology fields and
// evaluates the formulas. Outputs are unrounded and carry fixed unit suffixes;
// unparseable inputs propagate as NaN.
func SimulateHydrologicalPerformance(r FieldReader) HydrologicalResult {
	p := ParseNumberOrNaN(r.Get(FieldPrecipitation))
	et := ParseNumberOrNaN(r.Get(FieldEvapotranspiration))
	f1 := ParseNumberOrNaN(r.Get(FieldFlowPipe1))
	f2 := ParseNumberOrNaN(r.Get(FieldFlowPipe2))
	events := ParseNumberOrNaN(r.Get(FieldFloodEvents))
	total := ParseNumberOrNaN(r.Get(FieldTotalTime))
	q := ParseNumberOrNaN(r.Get(FieldInstantaneousFlow))

	return HydrologicalResult{
		Runoff:         FormatNumber(Runoff(p, et)) + " m³",
		PipeFlowRatio:  FormatNumber(PipeFlowRatio(f1, f2)),
		FloodFrequency: FormatNumber(FloodFrequency(events, total)) + " events/day",
		InflowOutflow:  FormatNumber(InflowOutflow(q)) + " m³/s",
	}
}
