package watchstore

import (
	"strings"

	"gorm.io/gorm"

	"github.com/oxhq/domkit/dom"
)

// Recorder implements dom.MutationObserver, persisting every delivered
// MutationRecord as a MutationLog row.
type Recorder struct {
	db        *gorm.DB
	sessionID string
}

// NewRecorder returns a Recorder that tags every row it writes with
// sessionID, so multiple watch runs against the same database stay
// distinguishable.
func NewRecorder(db *gorm.DB, sessionID string) *Recorder {
	return &Recorder{db: db, sessionID: sessionID}
}

var _ dom.MutationObserver = (*Recorder)(nil)

// Notify implements dom.MutationObserver.
func (r *Recorder) Notify(records []dom.MutationRecord) {
	for _, rec := range records {
		row := MutationLog{
			SessionID:     r.sessionID,
			RecordType:    recordTypeName(rec.Type),
			TargetDesc:    describeNode(rec.Target),
			AddedDesc:     describeNodes(rec.AddedNodes),
			RemovedDesc:   describeNodes(rec.RemovedNodes),
			AttributeName: rec.AttributeName,
			OldValue:      rec.OldValue,
		}
		// Best-effort: a failed insert must not break the caller's mutation
		// flow, so errors are swallowed here rather than propagated.
		r.db.Create(&row)
	}
}

func recordTypeName(t dom.RecordType) string {
	switch t {
	case dom.RecordChildList:
		return "childList"
	case dom.RecordAttributes:
		return "attributes"
	case dom.RecordCharacterData:
		return "characterData"
	default:
		return "unknown"
	}
}

func describeNode(n *dom.Node) string {
	if n == nil {
		return ""
	}
	return n.NodeName()
}

func describeNodes(ns []*dom.Node) string {
	descs := make([]string, 0, len(ns))
	for _, n := range ns {
		descs = append(descs, describeNode(n))
	}
	return strings.Join(descs, ",")
}
