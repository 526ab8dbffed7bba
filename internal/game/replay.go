package game

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"
)

const replayVersion = 1

// ReplayInput is one direction command, tagged with the index of the
// frame it was issued before. Commands the engine rejected live are
// rejected identically on playback, so raw commands are enough.
type ReplayInput struct {
	Frame int `msgpack:"f"`
	Dir   Dir `msgpack:"d"`
}

// ReplayOutcome is the final run result, stored to detect divergence.
type ReplayOutcome struct {
	Score     int `msgpack:"score"`
	Length    int `msgpack:"len"`
	FoodEaten int `msgpack:"food"`
}

// Replay is a deterministic recording of one run: the settings and
// seed to rebuild the systems, the exact per-frame clock deltas, and
// every direction command. Feeding the deltas and commands back
// through the engine reproduces the run bit for bit.
type Replay struct {
	Version    int           `msgpack:"v"`
	RunID      string        `msgpack:"id"`
	Difficulty string        `msgpack:"diff"`
	GridW      int           `msgpack:"gw"`
	GridH      int           `msgpack:"gh"`
	Seed       uint64        `msgpack:"seed"`
	Frames     []float64     `msgpack:"frames"` // ms per frame
	Inputs     []ReplayInput `msgpack:"inputs"`
	Outcome    ReplayOutcome `msgpack:"outcome"`
}

// Recorder accumulates a Replay during live play.
type Recorder struct {
	rep Replay
}

func NewRecorder(runID string, diff Difficulty, g Grid, seed uint64) *Recorder {
	return &Recorder{rep: Replay{
		Version:    replayVersion,
		RunID:      runID,
		Difficulty: diff.Name,
		GridW:      g.W,
		GridH:      g.H,
		Seed:       seed,
	}}
}

// Frame records one frame's clock delta in ms.
func (r *Recorder) Frame(frameMS float64) {
	r.rep.Frames = append(r.rep.Frames, frameMS)
}

// Input records a direction command issued before the next frame.
func (r *Recorder) Input(d Dir) {
	r.rep.Inputs = append(r.rep.Inputs, ReplayInput{Frame: len(r.rep.Frames), Dir: d})
}

// Finish stamps the outcome and returns the completed replay.
func (r *Recorder) Finish(score, length, foodEaten int) *Replay {
	r.rep.Outcome = ReplayOutcome{Score: score, Length: length, FoodEaten: foodEaten}
	return &r.rep
}

// PlayReplay re-runs a recording through a fresh engine and returns
// the outcome it produces.
func PlayReplay(rep *Replay, table EffectTable) (ReplayOutcome, error) {
	if rep.Version != replayVersion {
		return ReplayOutcome{}, fmt.Errorf("replay version %d not supported", rep.Version)
	}
	if rep.GridW < MinGridSide || rep.GridH < MinGridSide {
		return ReplayOutcome{}, fmt.Errorf("replay grid %dx%d invalid", rep.GridW, rep.GridH)
	}

	diff := GetDifficulty(rep.Difficulty)
	grid := NewGrid(rep.GridW, rep.GridH)
	snake := NewSnake(grid, diff, table)
	pickups := NewPickupSystem(grid, diff)
	sess := NewGameSession(0)
	sess.StartRun(diff, rep.Seed, snake, pickups, nil)

	in := 0
	for i, frame := range rep.Frames {
		for in < len(rep.Inputs) && rep.Inputs[in].Frame <= i {
			snake.SetDirection(rep.Inputs[in].Dir)
			in++
		}
		sess.AdvanceMS(frame)
		sess.PlayTick(frame, snake, pickups)
		if sess.State != StatePlaying {
			break
		}
	}
	return ReplayOutcome{Score: sess.Score, Length: snake.Len(), FoodEaten: snake.FoodEaten}, nil
}

// VerifyReplay replays the recording and compares the produced outcome
// with the recorded one.
func VerifyReplay(rep *Replay, table EffectTable) error {
	got, err := PlayReplay(rep, table)
	if err != nil {
		return err
	}
	if got != rep.Outcome {
		return fmt.Errorf("replay diverged: got %+v, recorded %+v", got, rep.Outcome)
	}
	return nil
}

// SaveReplay writes the replay beneath dir, creating it if needed, and
// returns the file path.
func SaveReplay(rep *Replay, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("replay dir: %w", err)
	}
	data, err := msgpack.Marshal(rep)
	if err != nil {
		return "", fmt.Errorf("encode replay: %w", err)
	}
	path := filepath.Join(dir, rep.RunID+".replay")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write replay: %w", err)
	}
	return path, nil
}

// LoadReplay reads and decodes a replay file. A corrupt or
// wrong-version file is an error, never a panic.
func LoadReplay(path string) (*Replay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read replay: %w", err)
	}
	var rep Replay
	if err := msgpack.Unmarshal(data, &rep); err != nil {
		return nil, fmt.Errorf("decode replay: %w", err)
	}
	if rep.Version != replayVersion {
		return nil, fmt.Errorf("replay version %d not supported", rep.Version)
	}
	return &rep, nil
}
