package main

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/widget"
)

// fyneprobe opens and closes a minimal window, verifying the host can run
// the dashboard's GUI stack before debugging anything viewer-specific.
func main() {
	fmt.Println("[probe] starting minimal window for the dashboard GUI stack")
	a := app.NewWithID("com.ecs163.statdash.probe")
	w := a.NewWindow("Stat Dashboard Probe")
	w.SetContent(widget.NewLabel("GUI stack works - window closes in 5s"))
	go func() {
		time.Sleep(5 * time.Second)
		fmt.Println("[probe] closing window via fyne.Do")
		fyne.Do(func() { w.Close() })
	}()
	w.ShowAndRun()
	fmt.Println("[probe] exited cleanly")
}
