package render

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/Freeeeeet/studio_booking/internal/model"
	"github.com/Freeeeeet/studio_booking/internal/schedule"
	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// Константы размеров и отступов
const (
	imageWidth      = 1200
	imageHeight     = 800
	headerHeight    = 80
	leftLabelsWidth = 70
	columnPaddingX  = 6
	slotPaddingY    = 2
	slotCornerRad   = 5.0
	defaultMinHour  = 8
	defaultMaxHour  = 21
)

// Цветовая схема
var (
	bgColor        = color.RGBA{245, 246, 248, 255}
	textColor      = color.RGBA{80, 85, 90, 220}
	hourLabelColor = color.RGBA{110, 115, 120, 200}
	hourLineColor  = color.NRGBA{200, 200, 200, 255}
	columnColor    = color.NRGBA{235, 236, 238, 255}

	slotFreeColor   = color.RGBA{133, 193, 85, 220}
	slotBookedColor = color.RGBA{255, 182, 193, 255}
	slotTextColor   = color.RGBA{20, 24, 28, 230}
)

// DailyCalendarPNG рисует дневной календарь: колонка на тренера,
// вертикальная ось — время. Свободные слоты зелёные, занятые розовые.
func DailyCalendarPNG(cal *model.DailyCalendar) ([]byte, error) {
	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetFontFace(basicfont.Face7x13)

	dc.SetColor(bgColor)
	dc.Clear()

	dc.SetColor(textColor)
	title := fmt.Sprintf("%s, %s — booked %d, available %d, utilization %d%%",
		cal.DayName, cal.Date, cal.BookedSlots, cal.AvailableSlots, cal.Utilization)
	dc.DrawStringAnchored(title, imageWidth/2, headerHeight/2, 0.5, 0.5)

	coaches := cal.CoachSummaries
	if len(coaches) == 0 {
		dc.DrawStringAnchored("No active coaches", imageWidth/2, imageHeight/2, 0.5, 0.5)
		return encodePNG(dc)
	}

	minHour, maxHour := hourBounds(cal)
	totalHours := maxHour - minHour
	gridTop := float64(headerHeight) + 30
	gridHeight := float64(imageHeight) - gridTop - 20
	hourHeight := gridHeight / float64(totalHours)
	columnWidth := (float64(imageWidth) - leftLabelsWidth) / float64(len(coaches))

	// Подписи часов и горизонтальные линии
	for h := minHour; h <= maxHour; h++ {
		y := gridTop + float64(h-minHour)*hourHeight
		dc.SetColor(hourLabelColor)
		dc.DrawStringAnchored(fmt.Sprintf("%02d:00", h), leftLabelsWidth/2, y, 0.5, 0.5)
		dc.SetColor(hourLineColor)
		dc.DrawLine(leftLabelsWidth, y, imageWidth, y)
		dc.Stroke()
	}

	columnByCoach := make(map[int64]int, len(coaches))
	for i, coachSummary := range coaches {
		columnByCoach[coachSummary.CoachID] = i
		x := leftLabelsWidth + float64(i)*columnWidth

		dc.SetColor(columnColor)
		dc.DrawRectangle(x+columnPaddingX, gridTop, columnWidth-2*columnPaddingX, gridHeight)
		dc.Fill()

		dc.SetColor(textColor)
		dc.DrawStringAnchored(coachSummary.CoachName, x+columnWidth/2, gridTop-15, 0.5, 0.5)
	}

	for _, bucket := range cal.TimeSlots {
		for _, slot := range bucket.Slots {
			col, okCol := columnByCoach[slot.CoachID]
			if !okCol {
				continue
			}

			start, err := schedule.ToMinutes(slot.StartTime)
			if err != nil {
				return nil, fmt.Errorf("parse slot start: %w", err)
			}
			end, err := schedule.ToMinutes(slot.EndTime)
			if err != nil {
				return nil, fmt.Errorf("parse slot end: %w", err)
			}

			x := leftLabelsWidth + float64(col)*columnWidth + columnPaddingX*2
			y := gridTop + (float64(start)/60-float64(minHour))*hourHeight + slotPaddingY
			w := columnWidth - columnPaddingX*4
			h := float64(end-start)/60*hourHeight - 2*slotPaddingY

			if slot.Status == model.SlotStatusBooked {
				dc.SetColor(slotBookedColor)
			} else {
				dc.SetColor(slotFreeColor)
			}
			dc.DrawRoundedRectangle(x, y, w, h, slotCornerRad)
			dc.Fill()

			label := slot.TimeSlot
			if slot.Status == model.SlotStatusBooked && slot.StudentName != "" {
				label = fmt.Sprintf("%s %s", slot.StartTime, slot.StudentName)
			}
			dc.SetColor(slotTextColor)
			dc.DrawStringAnchored(label, x+w/2, y+h/2, 0.5, 0.5)
		}
	}

	return encodePNG(dc)
}

// hourBounds возвращает диапазон часов с хотя бы одним слотом,
// либо дефолтный рабочий день если слотов нет
func hourBounds(cal *model.DailyCalendar) (int, int) {
	minHour, maxHour := -1, -1

	for _, bucket := range cal.TimeSlots {
		for _, slot := range bucket.Slots {
			start, err := schedule.ToMinutes(slot.StartTime)
			if err != nil {
				continue
			}
			end, err := schedule.ToMinutes(slot.EndTime)
			if err != nil {
				continue
			}

			if minHour == -1 || start/60 < minHour {
				minHour = start / 60
			}
			endHour := (end + 59) / 60
			if endHour > maxHour {
				maxHour = endHour
			}
		}
	}

	if minHour == -1 {
		return defaultMinHour, defaultMaxHour
	}
	if maxHour <= minHour {
		maxHour = minHour + 1
	}
	return minHour, maxHour
}

func encodePNG(dc *gg.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode calendar png: %w", err)
	}
	return buf.Bytes(), nil
}
