package board

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"departureboard.org/internal/timetable"
	"github.com/rodaine/table"
)

const progressWidth = 20

// Render writes a snapshot as plain text.
func Render(w io.Writer, snap Snapshot) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s → %s  %s\n", snap.Route.Origin, snap.Route.Destination, snap.Route.Line)
	fmt.Fprintf(&b, "%s (%s)\n\n", snap.Now.Format("Mon 15:04:05"), snap.DayType)

	if snap.ServiceEnded() {
		b.WriteString("Service has ended for today.\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	fmt.Fprintf(&b, "NEXT  %s  %s\n", snap.Next.Departure.Clock(), snap.Next.WaitLabel)
	fmt.Fprintf(&b, "[%s] %s  %s\n", snap.Style.Color, snap.Style.Message, progressBar(snap.Progress))
	if snap.Remaining == 1 {
		b.WriteString("1 departure left today\n")
	} else {
		fmt.Fprintf(&b, "%d departures left today\n", snap.Remaining)
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}

	if len(snap.Following) == 0 {
		return nil
	}

	if _, err := io.WriteString(w, "\nFollowing\n"); err != nil {
		return err
	}
	tbl := table.New("Time", "Wait").WithWriter(w)
	for _, up := range snap.Following {
		tbl.AddRow(up.Departure.Clock(), up.WaitLabel)
	}
	tbl.Print()
	return nil
}

func progressBar(percent int) string {
	filled := percent * progressWidth / 100
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", progressWidth-filled) + "] " +
		strconv.Itoa(percent) + "%"
}

// RenderTimetable writes the full day of a route, one row per hour.
func RenderTimetable(w io.Writer, route timetable.Route, dayType timetable.DayType) error {
	header := fmt.Sprintf("%s → %s  %s (%s)\n", route.Origin, route.Destination, route.Line, dayType)
	if _, err := io.WriteString(w, header); err != nil {
		return err
	}

	entries := route.Timetable.For(dayType).Entries()
	if len(entries) == 0 {
		_, err := io.WriteString(w, "No departures.\n")
		return err
	}

	tbl := table.New("Hour", "Minutes").WithWriter(w)
	for _, entry := range entries {
		minutes := make([]string, len(entry.Minutes))
		for i, m := range entry.Minutes {
			minutes[i] = fmt.Sprintf("%02d", m)
		}
		tbl.AddRow(fmt.Sprintf("%02d", entry.Hour), strings.Join(minutes, " "))
	}
	tbl.Print()
	return nil
}
