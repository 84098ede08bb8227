// Package gui is the desktop front end built on fyne.
package gui

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/yusufkecer/bmi-tracker/internal/domain"
	"github.com/yusufkecer/bmi-tracker/internal/render"
)

type Service interface {
	Calculate(username, weightText, heightText string) (*domain.BMIRecord, error)
	History(username string) ([]domain.BMIRecord, error)
	Trend(username string) ([]domain.TrendPoint, error)
}

// Notifier shows blocking messages to the user.
type Notifier interface {
	Error(title, message string)
	Info(title, message string)
}

type dialogNotifier struct {
	window fyne.Window
}

func (d dialogNotifier) Error(title, message string) {
	dialog.ShowError(errors.New(message), d.window)
}

func (d dialogNotifier) Info(title, message string) {
	dialog.ShowInformation(title, message, d.window)
}

type View struct {
	app    fyne.App
	window fyne.Window
	svc    Service
	notify Notifier
	log    zerolog.Logger

	nameEntry   *widget.Entry
	weightEntry *widget.Entry
	heightEntry *widget.Entry
	result      *widget.Label

	calcButton    *widget.Button
	historyButton *widget.Button
	trendButton   *widget.Button
}

func NewView(a fyne.App, svc Service, log zerolog.Logger) *View {
	v := &View{
		app:    a,
		window: a.NewWindow("Advanced BMI Calculator"),
		svc:    svc,
		log:    log,
	}
	v.notify = dialogNotifier{window: v.window}

	v.setupComponents()
	v.window.SetContent(v.layout())
	v.window.Resize(fyne.NewSize(400, 350))
	return v
}

func (v *View) Window() fyne.Window {
	return v.window
}

func (v *View) SetNotifier(n Notifier) {
	v.notify = n
}

func (v *View) setupComponents() {
	v.nameEntry = widget.NewEntry()
	v.weightEntry = widget.NewEntry()
	v.heightEntry = widget.NewEntry()
	v.result = widget.NewLabel("")
	v.result.TextStyle = fyne.TextStyle{Bold: true}

	v.calcButton = widget.NewButton("Calculate BMI", v.Calculate)
	v.historyButton = widget.NewButton("View History", func() { v.ShowHistory() })
	v.trendButton = widget.NewButton("Plot Trend", func() { v.ShowTrend() })
}

func (v *View) layout() fyne.CanvasObject {
	return container.NewVBox(
		widget.NewLabel("Username:"),
		v.nameEntry,
		widget.NewLabel("Weight (kg):"),
		v.weightEntry,
		widget.NewLabel("Height (cm):"),
		v.heightEntry,
		v.calcButton,
		v.result,
		v.historyButton,
		v.trendButton,
	)
}

func (v *View) Calculate() {
	rec, err := v.svc.Calculate(v.nameEntry.Text, v.weightEntry.Text, v.heightEntry.Text)
	if err != nil {
		v.showError(err, "calculate BMI")
		return
	}
	v.result.SetText(render.Result(rec))
	v.notify.Info("Success", "BMI data saved successfully!")
}

// ShowHistory opens a table of the user's records. It returns the new
// window, or nil when nothing was shown.
func (v *View) ShowHistory() fyne.Window {
	records, err := v.svc.History(v.nameEntry.Text)
	if err != nil {
		v.showError(err, "view history")
		return nil
	}

	w := v.app.NewWindow("BMI History")
	w.SetContent(historyTable(records))
	w.Resize(fyne.NewSize(560, 300))
	w.Show()
	return w
}

// ShowTrend opens the chart window. It returns nil when nothing was shown.
func (v *View) ShowTrend() fyne.Window {
	username := v.nameEntry.Text
	points, err := v.svc.Trend(username)
	if err != nil {
		v.showError(err, "plot trend")
		return nil
	}

	var buf bytes.Buffer
	if err := render.TrendChart(&buf, username, points); err != nil {
		v.showError(err, "plot trend")
		return nil
	}
	img, err := png.Decode(&buf)
	if err != nil {
		v.showError(fmt.Errorf("failed to decode chart: %w", err), "plot trend")
		return nil
	}

	chart := canvas.NewImageFromImage(img)
	chart.FillMode = canvas.ImageFillContain
	chart.SetMinSize(fyne.NewSize(600, 400))

	w := v.app.NewWindow("BMI Trend")
	w.SetContent(chart)
	w.Show()
	return w
}

func (v *View) showError(err error, action string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		v.notify.Error("Error", "Please enter valid weight and height.")
	case errors.Is(err, domain.ErrEmptyUsername):
		v.notify.Error("Error", "Enter a username to "+action+".")
	case errors.Is(err, domain.ErrNoData):
		v.notify.Info("Info", "No data available to plot.")
	default:
		v.log.Error().Err(err).Msg("gui action failed")
		v.notify.Error("Error", err.Error())
	}
}
