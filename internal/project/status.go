// status.go
//
// Canonical status pipeline and the one-time adapter for legacy values. Two
// incompatible enumerations existed historically: an ad-hoc 4-value set
// (in-progress/won/lost/hold) and the 5-stage pipeline, plus the Korean UI
// labels both were displayed as. Everything is normalized at the boundary;
// business logic only ever sees canonical values.

package project

// Status is a project's coarse pipeline position.
type Status string

const (
	StatusDesign     Status = "design"
	StatusContract   Status = "contract"
	StatusProduction Status = "production"
	StatusDelivery   Status = "delivery"
	StatusComplete   Status = "complete"
	StatusHold       Status = "hold"
)

// Progress stage keys. Collection is the stage stamped on completion.
const (
	StageDesign     = "design"
	StageContract   = "contract"
	StageProduction = "production"
	StageDelivery   = "delivery"
	StageCollection = "collection"
)

var legacyStatus = map[string]Status{
	// 4-value ad-hoc set
	"in-progress": StatusDesign,
	"In Progress": StatusDesign,
	"won":         StatusContract,
	"Won":         StatusContract,
	"lost":        StatusHold,
	"Lost":        StatusHold,
	"Hold":        StatusHold,

	// Korean UI labels
	"진행중": StatusDesign,
	"수주":  StatusContract,
	"설계":  StatusDesign,
	"계약":  StatusContract,
	"제작":  StatusProduction,
	"납품":  StatusDelivery,
	"완료":  StatusComplete,
	"보류":  StatusHold,
}

// NormalizeStatus maps a stored or submitted status value to the canonical
// enumeration. Canonical values pass through; unrecognized values are kept
// verbatim to tolerate schema evolution, like unknown progress keys.
func NormalizeStatus(raw string) Status {
	if raw == "" {
		return ""
	}
	if s, ok := legacyStatus[raw]; ok {
		return s
	}
	return Status(raw)
}

// stageForStatus maps a status to the progress stage it implies reaching.
// Hold implies nothing.
var stageForStatus = map[Status]string{
	StatusDesign:     StageDesign,
	StatusContract:   StageContract,
	StatusProduction: StageProduction,
	StatusDelivery:   StageDelivery,
	StatusComplete:   StageCollection,
}

// StageForStatus returns the progress stage key a status change implies, and
// whether there is one.
func StageForStatus(s Status) (string, bool) {
	stage, ok := stageForStatus[s]
	return stage, ok
}

// pipelineRank orders the pipeline statuses; hold and unknown rank -1.
var pipelineRank = map[Status]int{
	StatusDesign:     0,
	StatusContract:   1,
	StatusProduction: 2,
	StatusDelivery:   3,
	StatusComplete:   4,
}

// AtOrPast reports whether status s has reached stage t in the pipeline.
func (s Status) AtOrPast(t Status) bool {
	sr, ok1 := pipelineRank[s]
	tr, ok2 := pipelineRank[t]
	return ok1 && ok2 && sr >= tr
}
