package game

import (
	"fmt"
	"strings"
)

// RenderHUD draws all menu and in-game UI text using the font atlas.
func RenderHUD(r *Renderer, session *GameSession, snake *Snake, fbW, fbH int) {
	white := Palette.Text
	dim := Palette.TextDim
	red := Palette.Danger
	gold := Palette.Gold
	green := Palette.Head

	switch session.State {
	case StateMenu:
		title := "SERPENT"
		titleScale := float32(6.0)
		r.DrawString(title, fbW/2-TextWidth(title, titleScale)/2, fbH/2-140, titleScale, green)

		msg := "Press SPACE to start"
		r.DrawString(msg, fbW/2-TextWidth(msg, 2.0)/2, fbH/2-30, 2.0, white)

		info := fmt.Sprintf("Difficulty: %s", session.Difficulty.Name)
		if session.Best > 0 {
			info = fmt.Sprintf("Difficulty: %s   Best: %d", session.Difficulty.Name, session.Best)
		}
		r.DrawString(info, fbW/2-TextWidth(info, 2.0)/2, fbH/2+10, 2.0, gold)

		hint := "Arrows/WASD steer   P pause   M mute"
		r.DrawString(hint, fbW/2-TextWidth(hint, 1.5)/2, fbH/2+56, 1.5, dim)

	case StatePlaying, StatePaused:
		now := session.ClockMS
		s := float32(2.0)

		scoreStr := fmt.Sprintf("SCORE %d", session.Score)
		r.DrawString(scoreStr, 8, 8, s, white)

		timeStr := fmt.Sprintf("%.1fs", session.Elapsed())
		r.DrawString(timeStr, fbW/2-TextWidth(timeStr, s)/2, 8, s, dim)

		lenStr := fmt.Sprintf("LEN %d", snake.Len())
		r.DrawString(lenStr, fbW-TextWidth(lenStr, s)-8, 8, s, green)

		spdStr := fmt.Sprintf("SPD %.1f", snake.CurrentSpeed(now))
		r.DrawString(spdStr, 8, fbH-26, 1.5, dim)

		// Active effect badges along the bottom, centered as a row.
		var badges []string
		var badgeCols []RGB
		for _, kind := range EffectKinds() {
			if !snake.HasEffect(kind, now) {
				continue
			}
			label := fmt.Sprintf("%s %.1fs", strings.ToUpper(kind.String()), snake.EffectTimeRemaining(kind, now)/1000)
			if n := snake.EffectCount(kind, now); n > 1 {
				label += fmt.Sprintf(" x%d", n)
			}
			badges = append(badges, label)
			badgeCols = append(badgeCols, PickupColor(kind))
		}
		if len(badges) > 0 {
			bs := float32(1.5)
			total := -16
			for _, b := range badges {
				total += TextWidth(b, bs) + 16
			}
			bx := fbW/2 - total/2
			for i, b := range badges {
				r.DrawString(b, bx, fbH-26, bs, badgeCols[i])
				bx += TextWidth(b, bs) + 16
			}
		}

		if session.State == StatePaused {
			msg := "PAUSED"
			r.DrawString(msg, fbW/2-TextWidth(msg, 4.0)/2, fbH/2-60, 4.0, white)
			sub := "Press P to resume"
			r.DrawString(sub, fbW/2-TextWidth(sub, 2.0)/2, fbH/2, 2.0, dim)
		}

	case StateGameOver:
		msg1 := "GAME OVER"
		r.DrawString(msg1, fbW/2-TextWidth(msg1, 4.0)/2, fbH/2-150, 4.0, red)

		msg2 := fmt.Sprintf("Score: %d", session.Score)
		r.DrawString(msg2, fbW/2-TextWidth(msg2, 2.5)/2, fbH/2-100, 2.5, gold)
		if session.Score > 0 && session.Score >= session.Best {
			best := "NEW BEST!"
			r.DrawString(best, fbW/2-TextWidth(best, 2.0)/2, fbH/2-66, 2.0, gold)
		}

		msg3 := fmt.Sprintf("Food: %d   Time: %.1fs", session.FoodEaten, session.Elapsed())
		r.DrawString(msg3, fbW/2-TextWidth(msg3, 2.0)/2, fbH/2-34, 2.0, white)

		for i, row := range session.TopRows {
			line := fmt.Sprintf("%d. %-12s %6d", i+1, row.Player, row.Score)
			r.DrawString(line, fbW/2-TextWidth(line, 1.5)/2, fbH/2+4+i*16, 1.5, dim)
		}

		again := "Press SPACE to play again"
		r.DrawString(again, fbW/2-TextWidth(again, 2.0)/2, fbH/2+96, 2.0, white)
	}

	r.FlushText(fbW, fbH)
}
