// Command breachcore watches for the screenshot hotkey, reads the
// resulting clipboard image, and solves the breach protocol puzzle it
// finds there. A trailing file path switches to batch mode (decode
// that BMP instead of the clipboard); -capture grabs the active
// display instead; -upload ships the source bitmap and a result
// transcript to whichever cloud destination internal/config names;
// -enable-startup/-disable-startup toggle launch-on-sign-in.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/corvid-tools/breachcore/internal/bitmap"
	"github.com/corvid-tools/breachcore/internal/capture"
	"github.com/corvid-tools/breachcore/internal/clipboard"
	"github.com/corvid-tools/breachcore/internal/config"
	"github.com/corvid-tools/breachcore/internal/hotkey"
	"github.com/corvid-tools/breachcore/internal/mouseinput"
	"github.com/corvid-tools/breachcore/internal/run"
	"github.com/corvid-tools/breachcore/internal/update"
	"github.com/corvid-tools/breachcore/internal/upload"
)

// version is the running binary's release tag, compared against the
// update manifest by -version. Overridden at build time with
// -ldflags "-X main.version=...".
var version = "0.0.0-dev"

// busy serializes hotkey-triggered runs: a key-up that arrives while a
// previous run is still solving is dropped, the same way
// original_source's AtomicBool lock dropped re-entrant keyboard_hook
// calls.
var busy atomic.Bool

func main() {
	versionFlag := flag.Bool("version", false, "print the running version and check for an update")
	captureFlag := flag.Bool("capture", false, "capture the active display instead of waiting on the clipboard")
	uploadFlag := flag.Bool("upload", false, "upload the source screenshot and result transcript per the configured cloud destination")
	enableStartupFlag := flag.Bool("enable-startup", false, "register breachcore to launch at Windows sign-in")
	disableStartupFlag := flag.Bool("disable-startup", false, "remove breachcore from Windows sign-in launch")
	flag.Parse()

	switch {
	case *versionFlag:
		checkVersion()
	case *enableStartupFlag:
		setStartup(true)
	case *disableStartupFlag:
		setStartup(false)
	case *captureFlag:
		runCapture(*uploadFlag)
	case flag.NArg() > 0:
		runBatch(flag.Arg(flag.NArg()-1), *uploadFlag)
	default:
		runHotkey(*uploadFlag)
	}
}

func checkVersion() {
	fmt.Printf("breachcore %s\n", version)
	result, err := update.Check(version)
	if err != nil {
		fmt.Fprintf(os.Stderr, "update check: %v\n", err)
		return
	}
	if result.UpdateAvailable {
		fmt.Printf("update available: %s (%s)\n", result.LatestVersion, result.DownloadURL)
		return
	}
	fmt.Println("up to date")
}

func setStartup(enabled bool) {
	if err := config.SetStartupEnabled(enabled); err != nil {
		fmt.Fprintf(os.Stderr, "startup registration: %v\n", err)
		os.Exit(1)
	}
	if enabled {
		fmt.Println("breachcore will now launch at sign-in")
	} else {
		fmt.Println("breachcore removed from sign-in launch")
	}
}

func runHotkey(uploadResult bool) {
	fmt.Println("Press PrintScreen to solve the breach protocol on the clipboard...")
	listener := hotkey.NewListener(hotkey.VKSnapshot, func() { onHotkey(uploadResult) })
	if err := listener.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "hotkey listener: %v\n", err)
		os.Exit(1)
	}
}

func onHotkey(uploadResult bool) {
	if !busy.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer busy.Store(false)

		// Give the OS time to finish populating the clipboard after the
		// PrintScreen key-up that triggered this hook.
		time.Sleep(600 * time.Millisecond)

		img, err := clipboard.ReadBitmap()
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return
		}
		solveAndPlay(img, uploadResult)
	}()
}

func runCapture(uploadResult bool) {
	img, err := capture.ActiveDisplay()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	result, err := run.Execute(img)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	printResult(result)
	if uploadResult {
		maybeUpload(img, result)
	}
}

func runBatch(path string, uploadResult bool) {
	fmt.Printf("Reading %s bmp file...\n", path)
	img, err := bitmap.DecodeFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "decode %s: %v\n", path, err)
		os.Exit(1)
	}

	result, err := run.Execute(img)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	printResult(result)
	if uploadResult {
		maybeUpload(img, result)
	}
}

// solveAndPlay is the hotkey path's full pipeline: solve, report, play
// back the best solution, and upload if asked.
func solveAndPlay(img bitmap.Bitmap, uploadResult bool) {
	result, err := run.Execute(img)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return
	}
	printResult(result)
	playBest(result)
	if uploadResult {
		maybeUpload(img, result)
	}
}

func printResult(result run.Result) {
	fmt.Print(formatResult(result))
}

func formatResult(result run.Result) string {
	var b strings.Builder

	b.WriteString("Matrix:\n")
	for _, row := range result.Matrix {
		for _, hb := range row {
			b.WriteString(run.FormatHex(byte(hb)))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString("Conditions:\n")
	for _, row := range result.Conditions {
		for _, hb := range row {
			b.WriteString(run.FormatHex(byte(hb)))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Buffer size: %d\n\n", result.BufferSize)

	fmt.Fprintf(&b, "Found %d solutions\n", len(result.Solutions))
	fmt.Fprintf(&b, "%d best solutions:\n", len(result.Best))
	for i, s := range result.Best {
		conds := ""
		for _, ok := range s.Conditions {
			if ok {
				conds += "✔ "
			} else {
				conds += "✖ "
			}
		}
		steps := ""
		for _, step := range s.Steps {
			steps += run.FormatHex(byte(result.Matrix[step.Y][step.X]))
		}
		fmt.Fprintf(&b, "Solution #%d, conditions: %s, steps: %s\n", i+1, conds, steps)
	}
	b.WriteString("\n")

	return b.String()
}

// playBest clicks through the last (highest-ranked) of result.Best, the
// same "last().unwrap()" choice original_source's execute() made.
func playBest(result run.Result) {
	if len(result.Best) == 0 {
		return
	}
	best := result.Best[len(result.Best)-1]
	points := run.ClickPoints(result, best, len(result.Matrix))

	mouseinput.Click(-5000, -5000)
	cur := run.ClickPoint{}

	for _, p := range points {
		mouseinput.Click(int32(p.X-cur.X), int32(p.Y-cur.Y))
		cur = p
	}
}

// maybeUpload loads the on-disk config and, for every cloud
// destination it names, ships the source bitmap and this run's
// transcript there. Errors are reported but never fatal — a failed
// upload shouldn't discard a solved run.
func maybeUpload(img bitmap.Bitmap, result run.Result) {
	path, err := configFilePath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "upload: locate config: %v\n", err)
		return
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "upload: load config: %v\n", err)
		return
	}
	if cfg.Cloud.R2.AccountID == "" && cfg.Cloud.GDrive.FolderID == "" {
		fmt.Fprintln(os.Stderr, "upload: no cloud destination configured")
		return
	}

	var bmpBuf bytes.Buffer
	if err := bitmap.Encode(&bmpBuf, img); err != nil {
		fmt.Fprintf(os.Stderr, "upload: encode screenshot: %v\n", err)
		return
	}

	stamp := time.Now().UTC().Format("20060102T150405Z")
	ctx := context.Background()

	if cfg.Cloud.R2.AccountID != "" {
		key := fmt.Sprintf("breachcore/%s.bmp", stamp)
		if url, err := upload.R2(ctx, cfg.Cloud.R2, key, bmpBuf.Bytes()); err != nil {
			fmt.Fprintf(os.Stderr, "upload: R2: %v\n", err)
		} else {
			fmt.Printf("uploaded to %s\n", url)
		}

		transcriptKey := fmt.Sprintf("breachcore/%s.txt", stamp)
		if url, err := upload.R2(ctx, cfg.Cloud.R2, transcriptKey, []byte(formatResult(result))); err != nil {
			fmt.Fprintf(os.Stderr, "upload: R2 transcript: %v\n", err)
		} else {
			fmt.Printf("uploaded to %s\n", url)
		}
	}

	if cfg.Cloud.GDrive.FolderID != "" {
		name := fmt.Sprintf("breachcore-%s.bmp", stamp)
		if id, err := upload.GDrive(ctx, cfg.Cloud.GDrive, name, bmpBuf.Bytes()); err != nil {
			fmt.Fprintf(os.Stderr, "upload: GDrive: %v\n", err)
		} else {
			fmt.Printf("uploaded as Drive file %s\n", id)
		}

		transcriptName := fmt.Sprintf("breachcore-%s.txt", stamp)
		if id, err := upload.GDrive(ctx, cfg.Cloud.GDrive, transcriptName, []byte(formatResult(result))); err != nil {
			fmt.Fprintf(os.Stderr, "upload: GDrive transcript: %v\n", err)
		} else {
			fmt.Printf("uploaded as Drive file %s\n", id)
		}
	}
}

// configFilePath is the on-disk location of the JSON config this
// binary reads its cloud/startup/hotkey settings from.
func configFilePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "BreachCore", "config.json"), nil
}
