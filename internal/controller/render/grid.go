// Package render рисует сетку занятости в PNG: дни колонками, часы по
// вертикали, занятые интервалы — блоками поверх свободного фона.
// Чистая отрисовка: на расчёт доступности не влияет.
package render

import (
	"bytes"
	"fmt"
	"image/color"
	"time"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/Freeeeeet/meetbot/internal/availability"
	"github.com/Freeeeeet/meetbot/internal/service"
)

// Константы размеров и отступов
const (
	imageWidth      = 1200
	imageHeight     = 800
	headerHeight    = 60
	leftLabelsWidth = 70
	dayPaddingX     = 6
	minBlockHeight  = 4.0
	blockRadius     = 4.0
)

// Цветовая схема
var (
	bgColor        = color.RGBA{245, 246, 248, 255}
	textColor      = color.RGBA{80, 85, 90, 255}
	hourLineColor  = color.NRGBA{200, 200, 200, 255}
	evenDayColor   = color.NRGBA{240, 240, 240, 255}
	oddDayColor    = color.NRGBA{228, 228, 228, 255}
	freeColor      = color.RGBA{133, 193, 85, 220}
	busyColor      = color.RGBA{255, 138, 138, 235}
	blockTextColor = color.RGBA{20, 24, 28, 230}
)

// AvailabilityGrid рисует сетку занятости за период и возвращает PNG
func AvailabilityGrid(days []service.DayAvailability, window availability.TimeOfDayRange) ([]byte, error) {
	if len(days) == 0 {
		return nil, fmt.Errorf("no days to render")
	}
	if !window.IsValid() {
		return nil, fmt.Errorf("invalid time window")
	}

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetFontFace(basicfont.Face7x13)

	dc.SetColor(bgColor)
	dc.Clear()

	windowStartMin := window.Start.Hour*60 + window.Start.Minute
	windowEndMin := window.End.Hour*60 + window.End.Minute
	totalMin := windowEndMin - windowStartMin

	gridHeight := float64(imageHeight - headerHeight - 20)
	dayWidth := float64(imageWidth-leftLabelsWidth) / float64(len(days))

	// Фон колонок дней и подписи дат
	for i, day := range days {
		x := float64(leftLabelsWidth) + float64(i)*dayWidth

		if i%2 == 0 {
			dc.SetColor(evenDayColor)
		} else {
			dc.SetColor(oddDayColor)
		}
		dc.DrawRectangle(x, headerHeight, dayWidth, gridHeight)
		dc.Fill()

		dc.SetColor(textColor)
		label := day.Day.Format("02.01")
		dc.DrawStringAnchored(label, x+dayWidth/2, headerHeight/2, 0.5, 0.5)
	}

	// Часовая сетка и подписи часов слева
	for hour := window.Start.Hour; hour <= window.End.Hour; hour++ {
		minute := hour * 60
		if minute < windowStartMin || minute > windowEndMin {
			continue
		}
		y := float64(headerHeight) + gridHeight*float64(minute-windowStartMin)/float64(totalMin)

		dc.SetColor(hourLineColor)
		dc.SetLineWidth(1)
		dc.DrawLine(leftLabelsWidth, y, imageWidth, y)
		dc.Stroke()

		dc.SetColor(textColor)
		dc.DrawStringAnchored(fmt.Sprintf("%02d:00", hour), leftLabelsWidth-8, y, 1, 0.5)
	}

	// Блоки интервалов
	for i, day := range days {
		x := float64(leftLabelsWidth) + float64(i)*dayWidth + dayPaddingX
		blockWidth := dayWidth - 2*dayPaddingX

		for _, iv := range day.Free {
			drawBlock(dc, iv, windowStartMin, totalMin, gridHeight, x, blockWidth, freeColor)
		}
		for _, iv := range day.Busy {
			drawBlock(dc, iv, windowStartMin, totalMin, gridHeight, x, blockWidth, busyColor)
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func drawBlock(
	dc *gg.Context,
	iv availability.Interval,
	windowStartMin, totalMin int,
	gridHeight, x, width float64,
	fill color.Color,
) {
	startMin := minuteOfDay(iv.Start) - windowStartMin
	endMin := minuteOfDay(iv.End) - windowStartMin
	if endMin <= 0 || startMin >= totalMin {
		return
	}
	if startMin < 0 {
		startMin = 0
	}
	if endMin > totalMin {
		endMin = totalMin
	}

	y := float64(headerHeight) + gridHeight*float64(startMin)/float64(totalMin)
	height := gridHeight * float64(endMin-startMin) / float64(totalMin)
	if height < minBlockHeight {
		height = minBlockHeight
	}

	dc.SetColor(fill)
	dc.DrawRoundedRectangle(x, y, width, height, blockRadius)
	dc.Fill()

	// Подпись времени влезает только в достаточно высокие блоки
	if height >= 16 {
		dc.SetColor(blockTextColor)
		label := fmt.Sprintf("%s-%s", iv.Start.Format("15:04"), iv.End.Format("15:04"))
		dc.DrawStringAnchored(label, x+width/2, y+height/2, 0.5, 0.5)
	}
}

// minuteOfDay минута суток в зоне самого времени
func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
