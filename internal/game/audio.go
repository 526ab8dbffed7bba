package game

import (
	"io"
	"math"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// SoundKind identifies different sound effects.
type SoundKind int

const (
	SoundEat SoundKind = iota
	SoundPowerUp
	SoundGhost
	SoundSlow
	SoundTurn
	SoundDeath
	SoundMenuSelect
	SoundGameOver
)

// AudioSystem manages procedural sound effects and music.
type AudioSystem struct {
	ctx         *oto.Context
	ready       chan struct{}
	musicPlayer oto.Player
}

var globalAudio *AudioSystem

var musicVolume float64 = 0.14
var sfxVolume float64 = 0.58
var muted bool

// InitAudio initializes the audio system.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

// SetMuted silences all output. Music keeps playing at zero volume so
// the track position is preserved across toggles.
func SetMuted(m bool) {
	muted = m
	if globalAudio == nil || globalAudio.musicPlayer == nil {
		return
	}
	if m {
		globalAudio.musicPlayer.SetVolume(0)
	} else {
		globalAudio.musicPlayer.SetVolume(musicVolume)
	}
}

func Muted() bool { return muted }

// PlaySound plays a procedurally generated sound effect.
func PlaySound(kind SoundKind) {
	PlaySoundWithGain(kind, 1.0)
}

// PlaySoundWithGain plays a sound effect scaled by gain in [0,1].
func PlaySoundWithGain(kind SoundKind, gain float64) {
	if globalAudio == nil || muted || gain <= 0 {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	samples := generateSound(kind)
	if samples == nil {
		return
	}
	go func() {
		reader := &soundReader{data: samples}
		player := globalAudio.ctx.NewPlayer(reader)
		player.SetVolume(sfxVolume * clamp(gain, 0, 1))
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// putStereoF32LR writes independent left/right samples in [-1,1].
func putStereoF32LR(buf []byte, i int, left, right float64) {
	lv := math.Float32bits(float32(left))
	rv := math.Float32bits(float32(right))
	buf[i*8] = byte(lv)
	buf[i*8+1] = byte(lv >> 8)
	buf[i*8+2] = byte(lv >> 16)
	buf[i*8+3] = byte(lv >> 24)
	buf[i*8+4] = byte(rv)
	buf[i*8+5] = byte(rv >> 8)
	buf[i*8+6] = byte(rv >> 16)
	buf[i*8+7] = byte(rv >> 24)
}

// softSat applies gentle tanh-like saturation — no harsh clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
// carrier: base frequency, modRatio: modulator/carrier ratio, modIdx: modulation depth.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

// makeBuf allocates a stereo float32 buffer for n samples.
func makeBuf(n int) []byte { return make([]byte, n*8) }

// ---- Sound effects -------------------------------------------------------

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundEat:
		return genEat()
	case SoundPowerUp:
		return genPowerUp()
	case SoundGhost:
		return genGhost()
	case SoundSlow:
		return genSlow()
	case SoundTurn:
		return genTurn()
	case SoundDeath:
		return genDeath()
	case SoundMenuSelect:
		return genMenuSelect()
	case SoundGameOver:
		return genGameOver()
	}
	return nil
}

// genEat: short rising FM blip.
func genEat() []byte {
	n := int(0.09 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.5, 0.0, 0.1)
		freq := 480 + 720*p
		s := fm(t, freq, 2.0, 3.5*env) * env * 0.5
		// Thin harmonic layer for clarity.
		s += math.Sin(2*math.Pi*freq*3*t) * env * 0.06
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genPowerUp: ascending FM bell arpeggio.
func genPowerUp() []byte {
	n := int(0.35 * SampleRate)
	buf := makeBuf(n)
	notes := [3]float64{659.25, 880.0, 1318.5}
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		s := 0.0
		for ni, freq := range notes {
			start := float64(ni) * 0.09
			if t < start {
				continue
			}
			lt := t - start
			env := math.Exp(-lt * 9.0)
			s += fm(lt, freq, 3.5, 1.8*env) * env * 0.30
		}
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genGhost: detuned shimmer drifting upward.
func genGhost() []byte {
	n := int(0.45 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.15, 0.2, 0.6, 0.35)
		freq := 330 + 160*p
		s := math.Sin(2*math.Pi*freq*t) * 0.22
		s += math.Sin(2*math.Pi*freq*1.007*t) * 0.22
		s += fm(t, freq*2, 1.45, 0.8) * 0.10
		putStereoF32(buf, i, softSat(s*env))
	}
	return buf
}

// genSlow: descending wobble.
func genSlow() []byte {
	n := int(0.4 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.3, 0.5, 0.3)
		freq := 620 - 380*p
		s := fm(t, freq, 0.5, 1.6*env) * env * 0.45
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genTurn: very short tick for direction changes.
func genTurn() []byte {
	n := int(0.018 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := math.Exp(-p * 9.0)
		s := math.Sin(2*math.Pi*900*t) * env * 0.30
		putStereoF32(buf, i, s)
	}
	return buf
}

// genDeath: falling tone over filtered noise.
func genDeath() []byte {
	n := int(0.7 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(424242)
	lp := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := math.Exp(-p * 4.0)
		freq := 300 * math.Exp(-p*1.8)
		s := fm(t, freq, 0.5, 2.2) * env * 0.5
		lp = lp*0.9 + lcg(&seed)*0.1
		s += lp * env * 0.35
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genMenuSelect: bright confirmation blip.
func genMenuSelect() []byte {
	n := int(0.08 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.05, 0.4, 0.0, 0.2)
		s := softSquareWave(2*math.Pi*740*t) * env * 0.25
		s += math.Sin(2*math.Pi*1480*t) * env * 0.08
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genGameOver: three notes stepping down.
func genGameOver() []byte {
	n := int(1.1 * SampleRate)
	buf := makeBuf(n)
	notes := [3]float64{329.63, 261.63, 196.0}
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		s := 0.0
		for ni, freq := range notes {
			start := float64(ni) * 0.22
			if t < start {
				continue
			}
			lt := t - start
			env := math.Exp(-lt * 2.8)
			s += fm(lt, freq, 1.0, 0.9*env) * env * 0.28
		}
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// ---- Music ---------------------------------------------------------------

type musicReader struct {
	t        float64
	seed     uint64
	measure  int
	menuMode bool
}

func StartMenuMusic() { startMusic(true, 0.24) }
func StartGameMusic() { startMusic(false, 0.14) }

func StopMusic() {
	if globalAudio == nil || globalAudio.musicPlayer == nil {
		return
	}
	globalAudio.musicPlayer.Close()
	globalAudio.musicPlayer = nil
}

func startMusic(menuMode bool, volume float64) {
	if globalAudio == nil {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	if globalAudio.musicPlayer != nil {
		globalAudio.musicPlayer.Close()
	}
	musicVolume = volume
	reader := &musicReader{
		seed:     uint64(time.Now().UnixNano()),
		menuMode: menuMode,
	}
	player := globalAudio.ctx.NewPlayer(reader)
	if muted {
		player.SetVolume(0)
	} else {
		player.SetVolume(volume)
	}
	globalAudio.musicPlayer = player
	player.Play()
}

func (m *musicReader) Read(p []byte) (int, error) {
	samples := len(p) / 8
	if samples == 0 {
		return 0, nil
	}
	if m.menuMode {
		return m.readMenuMusic(p, samples)
	}
	return m.readGameMusic(p, samples)
}

// ---- Instruments ---------------------------------------------------------

// kick returns a kick drum sample given time-since-trigger.
func kick(trig float64) float64 {
	if trig > 0.25 {
		return 0
	}
	phase := 2 * math.Pi * 185 / 12.5 * (1 - math.Exp(-trig*12.5))
	body := math.Sin(phase) * math.Exp(-trig*18.0) * 0.80
	click := math.Sin(2*math.Pi*2100*trig) * math.Exp(-trig*250.0) * 0.24
	air := math.Sin(2*math.Pi*330*trig) * math.Exp(-trig*38.0) * 0.12
	return softSat(body + click + air)
}

// snare returns a snare sample given time-since-trigger.
func snare(trig float64, seed *uint64) float64 {
	if trig > 0.2 {
		return 0
	}
	env := math.Exp(-trig * 26.0)
	body := (math.Sin(2*math.Pi*188*trig)*0.24 + math.Sin(2*math.Pi*356*trig)*0.10) * env
	n1 := lcg(seed)
	n2 := lcg(seed)
	bandNoise := (n1 - n2*0.55) * env * (0.55 + 0.25*math.Exp(-trig*8.0))
	snap := math.Sin(2*math.Pi*2800*trig) * math.Exp(-trig*120.0) * 0.10
	return softSat(body + bandNoise + snap)
}

// hihat returns a closed hi-hat sample. open=true for longer decay.
func hihat(trig float64, open bool, seed *uint64) float64 {
	decay := 42.0
	limit := 0.06
	if open {
		decay = 15.0
		limit = 0.18
	}
	if trig > limit {
		return 0
	}
	n := lcg(seed)
	metal := math.Sin(2*math.Pi*7300*trig) + math.Sin(2*math.Pi*9200*trig)*0.6
	s := (n*0.8 + metal*0.2) * math.Exp(-trig*decay) * 0.07
	return softSat(s)
}

// fmBass returns a warm FM bass sample — low modRatio gives smooth tone.
func fmBass(t, freq, env float64) float64 {
	b := fm(t, freq, 0.5, 1.25*env) * env * 0.48
	b += math.Sin(2*math.Pi*freq*t) * env * 0.26
	b += math.Sin(2*math.Pi*freq*0.5*t) * env * 0.10
	return softSat(b)
}

// fmPad returns a lush pad sample from a chord — three detuned FM oscillators per note.
func fmPad(t float64, chord []float64, env float64) float64 {
	s := 0.0
	detunes := [4]float64{-0.004, -0.001, 0.002, 0.005}
	for _, freq := range chord {
		for _, d := range detunes {
			f := freq * (1 + d)
			vib := 1 + 0.003*math.Sin(2*math.Pi*(0.23+f*0.0007)*t)
			s += fm(t, f*vib, 1.45, 0.75*env) * 0.048
		}
	}
	return softSat(s)
}

// fmArp returns an FM arpeggio sample for one note.
func fmArp(t, freq, env float64) float64 {
	s := fm(t, freq, 2.0, 3.2*env) * env * 0.20
	s += math.Sin(2*math.Pi*freq*2*t) * env * 0.08
	return softSat(s)
}

// fmLead returns an FM lead/melody sample.
func fmLead(t, freq, env float64) float64 {
	vib := 1 + 0.01*math.Sin(2*math.Pi*5.4*t)
	s := fm(t, freq*vib, 1.55, 2.7*env) * env * 0.26
	s += math.Sin(2*math.Pi*freq*2.98*t) * env * 0.07
	return softSat(s)
}

func triWave(phase float64) float64 {
	return (2.0 / math.Pi) * math.Asin(math.Sin(phase))
}

func softSquareWave(phase float64) float64 {
	return math.Tanh(math.Sin(phase) * 3.4)
}

// ---- Menu music ----------------------------------------------------------

func (m *musicReader) readMenuMusic(p []byte, samples int) (int, error) {
	chords := [][]float64{
		{220.0, 261.6, 329.6, 392.0}, // Am7
		{174.6, 220.0, 261.6, 329.6}, // Fmaj7
		{261.6, 329.6, 392.0, 493.9}, // Cmaj7
		{196.0, 246.9, 293.7, 349.2}, // G7
	}
	const tempo = 1.7 // 102 BPM
	const beatsPerChord = 4
	arpOrder := [8]int{0, 1, 2, 3, 2, 3, 1, 2}

	for i := 0; i < samples && i*8+7 < len(p); i++ {
		m.t += 1.0 / SampleRate
		currentBeat := int(m.t * tempo)
		chordStep := (currentBeat / beatsPerChord) % len(chords)
		chord := chords[chordStep]
		step8 := int(m.t*tempo*2) % 8

		s := fmPad(m.t, chord, 0.85)

		// Slow sub note under the pad.
		s += triWave(2*math.Pi*chord[0]/2*m.t) * 0.10

		arpFreq := chord[arpOrder[step8]] * 2
		arpEnv := adsr(math.Mod(m.t*tempo*2, 1.0), 0.03, 0.5, 0.10, 0.3)
		s += fmArp(m.t, arpFreq, arpEnv) * 0.7

		breath := lcg(&m.seed) * 0.004
		s = softSat(s*0.9 + breath)
		pan := 0.12 * math.Sin(2*math.Pi*0.08*m.t)
		left := softSat(s * (1 - pan))
		right := softSat(s * (1 + pan))
		putStereoF32LR(p, i, left, right)
	}
	return samples * 8, nil
}

// ---- Game music ----------------------------------------------------------

func (m *musicReader) readGameMusic(p []byte, samples int) (int, error) {
	chords := [][]float64{
		{220.0, 261.6, 329.6, 440.0}, // Am
		{174.6, 220.0, 261.6, 349.2}, // F
		{196.0, 246.9, 293.7, 392.0}, // G
		{164.8, 196.0, 246.9, 329.6}, // Em
	}
	const tempo = 2.2 // 132 BPM
	const beatsPerChord = 4
	const step16Len = 1.0 / (tempo * 4.0)
	const step8Len = 1.0 / (tempo * 2.0)

	kickPattern := [16]bool{
		true, false, false, false,
		true, false, false, false,
		true, false, false, false,
		true, false, false, true,
	}
	snarePattern := [16]bool{
		false, false, false, false,
		true, false, false, false,
		false, false, false, false,
		true, false, false, false,
	}
	bassPattern := [8]bool{true, false, true, true, false, true, false, true}
	arpOrder := [8]int{0, 2, 1, 3, 0, 2, 3, 1}
	leadNotes := [16]float64{
		440.0, 0, 523.25, 0,
		659.25, 0, 523.25, 0,
		440.0, 0, 392.0, 0,
		440.0, 0, 329.63, 0,
	}

	for i := 0; i < samples && i*8+7 < len(p); i++ {
		m.t += 1.0 / SampleRate
		beatLen := 1.0 / tempo
		beatTrig := math.Mod(m.t, beatLen)
		step16Trig := math.Mod(m.t, step16Len)
		step16 := int(m.t*tempo*4) % 16
		step8 := int(m.t*tempo*2) % 8
		currentBeat := int(m.t * tempo)
		m.measure = currentBeat / 4

		chordStep := (currentBeat / beatsPerChord) % len(chords)
		chord := chords[chordStep]

		s := 0.0
		if kickPattern[step16] {
			s += kick(step16Trig)
		}
		if snarePattern[step16] {
			s += snare(step16Trig, &m.seed)
		}
		s += hihat(step16Trig, step16%8 == 6, &m.seed)

		if bassPattern[step8] {
			bassFreq := chord[0] / 2
			if step8 == 3 {
				bassFreq = chord[2] / 2
			}
			bEnv := adsr(math.Mod(m.t*tempo*2, 1.0), 0.02, 0.5, 0.3, 0.18)
			s += fmBass(m.t, bassFreq, bEnv)
		}

		arpFreq := chord[arpOrder[step8]]
		if step8%2 == 1 {
			arpFreq *= 2
		}
		arpEnv := adsr(math.Mod(m.t*tempo*2, 1.0), 0.01, 0.4, 0.12, 0.2)
		s += fmArp(m.t, arpFreq, arpEnv)

		// Lead enters on the back half of every four measures.
		if m.measure%4 >= 2 {
			note := leadNotes[step16]
			if note > 0 {
				leadEnv := adsr(math.Mod(m.t*tempo*4, 1.0), 0.02, 0.4, 0.3, 0.25)
				s += fmLead(m.t, note, leadEnv)
			}
		}

		duck := 1.0 - 0.12*math.Exp(-beatTrig*14.0)
		s = softSat(s * duck * 0.9)
		pan := 0.09 * math.Sin(2*math.Pi*0.13*m.t)
		left := softSat(s * (1 - pan))
		right := softSat(s * (1 + pan))
		putStereoF32LR(p, i, left, right)
	}
	return samples * 8, nil
}
