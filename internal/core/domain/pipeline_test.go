package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultStages(t *testing.T) {
	stages := DefaultStages()

	assert.Len(t, stages, 4)
	keys := make([]string, len(stages))
	for i, s := range stages {
		keys[i] = s.Key
	}
	assert.Equal(t, []string{StageOCR, StageNLP, StageRule, StageVoucher}, keys)

	assert.Equal(t, 1200*time.Millisecond, stages[0].Duration)
	assert.Equal(t, 800*time.Millisecond, stages[1].Duration)
	assert.Equal(t, 300*time.Millisecond, stages[2].Duration)
	assert.Equal(t, 500*time.Millisecond, stages[3].Duration)
}

func TestDefaultStages_RevealMapping(t *testing.T) {
	stages := DefaultStages()

	assert.Equal(t, ResultOCR, stages[0].Reveals)
	assert.Equal(t, ResultNLP, stages[1].Reveals)
	// rule matching keeps the NLP panel visible
	assert.Equal(t, ResultNLP, stages[2].Reveals)
	assert.Equal(t, ResultVoucher, stages[3].Reveals)
}

func TestTotalDuration(t *testing.T) {
	assert.Equal(t, 2800*time.Millisecond, TotalDuration(DefaultStages()))
	assert.Equal(t, time.Duration(0), TotalDuration(nil))
}

func TestIdleState(t *testing.T) {
	s := IdleState("INV-2024-001", 3)

	assert.True(t, s.IsIdle())
	assert.False(t, s.IsTerminal())
	assert.Equal(t, NoStage, s.CurrentStage)
	assert.Equal(t, uint64(3), s.Generation)
	assert.Equal(t, "INV-2024-001", s.DocumentID)
}

func TestRunState_IsIdle_FalseWhenScanning(t *testing.T) {
	s := IdleState("x", 0)
	s.Scanning = true
	assert.False(t, s.IsIdle())
}

func TestRunState_StageCompleted(t *testing.T) {
	s := RunState{Completed: []int{0, 1}}

	assert.True(t, s.StageCompleted(0))
	assert.True(t, s.StageCompleted(1))
	assert.False(t, s.StageCompleted(2))
}

func TestRunState_Clone(t *testing.T) {
	s := RunState{Completed: []int{0, 1}}
	c := s.Clone()
	c.Completed[0] = 9

	assert.Equal(t, 0, s.Completed[0])
}

func TestResultKind_String(t *testing.T) {
	assert.Equal(t, "none", ResultNone.String())
	assert.Equal(t, "ocr", ResultOCR.String())
	assert.Equal(t, "nlp", ResultNLP.String())
	assert.Equal(t, "voucher", ResultVoucher.String())
	assert.Equal(t, "unknown", ResultKind(42).String())
}

func TestRunPhase_String(t *testing.T) {
	assert.Equal(t, "idle", PhaseIdle.String())
	assert.Equal(t, "scanning", PhaseScanning.String())
	assert.Equal(t, "running", PhaseRunning.String())
	assert.Equal(t, "complete", PhaseComplete.String())
}
