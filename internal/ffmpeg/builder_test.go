package ffmpeg

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/backmassage/proresbatch/internal/profile"
)

func TestBuild_Default(t *testing.T) {
	args := Build(profile.Default, "/in/clip.mp4", "/out/clip_ProResHQ.mov", false)
	got := strings.Join(args, " ")
	want := "ffmpeg -hide_banner -nostdin -y -loglevel error " +
		"-i /in/clip.mp4 " +
		"-c:v prores_ks -profile:v 3 -vendor apl0 -bits_per_mb 8000 " +
		"-pix_fmt yuv422p10le -c:a pcm_s24le " +
		"/out/clip_ProResHQ.mov"
	if got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

func TestBuild_BT709OrderAndVerbose(t *testing.T) {
	args := Build(profile.BT709, "in.mp4", "out.mov", true)

	got := strings.Join(args, " ")
	if !strings.Contains(got, "-loglevel info") {
		t.Errorf("verbose build missing -loglevel info: %v", args)
	}
	// Input precedes the filter chain, output comes last.
	inIdx := strings.Index(got, "-i in.mp4")
	vfIdx := strings.Index(got, "-vf zscale")
	if inIdx == -1 || vfIdx == -1 || inIdx > vfIdx {
		t.Errorf("argument order wrong: %q", got)
	}
	if args[len(args)-1] != "out.mov" {
		t.Errorf("output path must be last, got %q", args[len(args)-1])
	}
}

func TestBuild_PathsWithSpacesStayIntact(t *testing.T) {
	args := Build(profile.Default, "/in/my clip.mp4", "/out/my clip_ProResHQ.mov", false)
	found := false
	for _, a := range args {
		if a == "/in/my clip.mp4" {
			found = true
		}
	}
	if !found {
		t.Errorf("input path was mangled: %v", args)
	}
}

// stubFfmpeg installs a fake ffmpeg on PATH. On success it creates its last
// argument as a file; on failure it exits 1 without writing anything.
func stubFfmpeg(t *testing.T, code int) {
	t.Helper()
	dir := t.TempDir()
	script := "#!/bin/sh\necho 'frame=1' >&2\nexit 1\n"
	if code == 0 {
		script = "#!/bin/sh\nfor out in \"$@\"; do :; done\ntouch \"$out\"\necho 'frame=1' >&2\nexit 0\n"
	}
	if err := os.WriteFile(filepath.Join(dir, "ffmpeg"), []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func TestExecute_CapturesStderr(t *testing.T) {
	stubFfmpeg(t, 0)
	out := filepath.Join(t.TempDir(), "out.mov")
	res := Execute(context.Background(), []string{"ffmpeg", "-i", "in.mp4", out}, false)
	if res.Err != nil {
		t.Fatalf("Execute: %v", res.Err)
	}
	if !strings.Contains(res.Stderr, "frame=1") {
		t.Errorf("stderr not captured: %q", res.Stderr)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("output file not written: %v", err)
	}
}

func TestExecute_ReturnsExitError(t *testing.T) {
	stubFfmpeg(t, 1)
	res := Execute(context.Background(), []string{"ffmpeg", "in.mp4"}, false)
	if res.Err == nil {
		t.Error("want non-nil Err for failing encoder")
	}
}
