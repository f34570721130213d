package domain

import "time"

// ResultKind identifies which canned result block is currently revealed.
type ResultKind int

const (
	// ResultNone means nothing has been revealed yet.
	ResultNone ResultKind = iota
	// ResultOCR reveals the recognised invoice fields.
	ResultOCR
	// ResultNLP reveals the account classification.
	ResultNLP
	// ResultVoucher reveals the generated voucher.
	ResultVoucher
)

// String returns the string representation of the result kind.
func (k ResultKind) String() string {
	switch k {
	case ResultNone:
		return "none"
	case ResultOCR:
		return "ocr"
	case ResultNLP:
		return "nlp"
	case ResultVoucher:
		return "voucher"
	default:
		return "unknown"
	}
}

// Stage is one fixed step of the processing pipeline.
type Stage struct {
	// Key is the stable stage identifier, also used as its config key.
	Key string

	// Label is the display label.
	Label string

	// Duration is how long the stage takes before it completes.
	Duration time.Duration

	// Reveals is the result block shown once the stage completes.
	Reveals ResultKind
}

// Stage keys.
const (
	StageOCR     = "ocr"
	StageNLP     = "nlp"
	StageRule    = "rule"
	StageVoucher = "voucher"
)

// DefaultUploadLabel is shown when an upload carries no file name.
const DefaultUploadLabel = "已上传发票.pdf"

// DefaultIntakeDelay is the simulated scan latency before processing starts.
const DefaultIntakeDelay = 2 * time.Second

// DefaultStages returns the stage list in execution order.
// Rule matching has no result block of its own and keeps the NLP panel visible.
func DefaultStages() []Stage {
	return []Stage{
		{Key: StageOCR, Label: "OCR识别", Duration: 1200 * time.Millisecond, Reveals: ResultOCR},
		{Key: StageNLP, Label: "NLP分析", Duration: 800 * time.Millisecond, Reveals: ResultNLP},
		{Key: StageRule, Label: "规则匹配", Duration: 300 * time.Millisecond, Reveals: ResultNLP},
		{Key: StageVoucher, Label: "生成凭证", Duration: 500 * time.Millisecond, Reveals: ResultVoucher},
	}
}

// TotalDuration sums the durations of the given stages.
func TotalDuration(stages []Stage) time.Duration {
	var total time.Duration
	for _, s := range stages {
		total += s.Duration
	}
	return total
}

// RunPhase is the coarse lifecycle phase of a pipeline run.
type RunPhase int

const (
	// PhaseIdle means no run is in progress.
	PhaseIdle RunPhase = iota
	// PhaseScanning is the intake delay before stages start.
	PhaseScanning
	// PhaseRunning means stages are advancing.
	PhaseRunning
	// PhaseComplete is terminal: every stage has completed.
	PhaseComplete
)

// String returns the string representation of the phase.
func (p RunPhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseScanning:
		return "scanning"
	case PhaseRunning:
		return "running"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// NoStage marks the absence of a current stage.
const NoStage = -1

// RunState is a snapshot of the pipeline controller.
// Snapshots are values; mutating one never affects the controller.
type RunState struct {
	// RunID identifies the run that produced this snapshot. Empty when idle.
	RunID string

	// Generation increases on every reset. Timer callbacks carrying an
	// older generation are discarded.
	Generation uint64

	// DocumentID is the document the run operates on.
	DocumentID string

	Phase RunPhase

	// CurrentStage is the index of the stage in progress, or NoStage.
	CurrentStage int

	// Completed holds completed stage indices. It is always 0..n-1 for some n.
	Completed []int

	Revealed ResultKind
	Running  bool
	Scanning bool

	// UploadLabel is the scanned file name or sample label, if any.
	UploadLabel string
}

// IdleState returns the reset state for a document.
func IdleState(documentID string, generation uint64) RunState {
	return RunState{
		Generation:   generation,
		DocumentID:   documentID,
		Phase:        PhaseIdle,
		CurrentStage: NoStage,
		Revealed:     ResultNone,
	}
}

// IsIdle reports whether the state is the reset state.
func (s RunState) IsIdle() bool {
	return s.Phase == PhaseIdle && s.CurrentStage == NoStage &&
		len(s.Completed) == 0 && s.Revealed == ResultNone &&
		!s.Running && !s.Scanning
}

// IsTerminal reports whether every stage has completed.
func (s RunState) IsTerminal() bool {
	return s.Phase == PhaseComplete
}

// StageCompleted reports whether the stage at index i has completed.
func (s RunState) StageCompleted(i int) bool {
	for _, c := range s.Completed {
		if c == i {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no memory with s.
func (s RunState) Clone() RunState {
	out := s
	if s.Completed != nil {
		out.Completed = append([]int(nil), s.Completed...)
	}
	return out
}
