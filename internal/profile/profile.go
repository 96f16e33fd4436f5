// Package profile selects the ProRes encoding parameter set for a candidate
// based on its detected color primaries.
//
// All profiles share the prores_ks codec at quality profile 3 (422 HQ),
// 10-bit 4:2:2 pixel format, and uncompressed 24-bit PCM audio. The two
// known-primaries profiles additionally tag the output with explicit color
// metadata and rescale full-range sources to limited range; the default
// profile deliberately leaves color metadata untouched when the source space
// is unrecognized.
package profile

// Profile identifies one fixed encoder parameter set.
type Profile int

const (
	Default Profile = iota
	BT709
	BT2020
)

// Select maps a probed color_primaries value to a profile. The match is
// exact; anything else, including an empty value from a failed probe, gets
// the pass-through default.
func Select(colorPrimaries string) Profile {
	switch colorPrimaries {
	case "bt709":
		return BT709
	case "bt2020":
		return BT2020
	default:
		return Default
	}
}

// String returns a short label for logging.
func (p Profile) String() string {
	switch p {
	case BT709:
		return "bt709"
	case BT2020:
		return "bt2020"
	default:
		return "default"
	}
}

// Shared encode parameters: ProRes 422 HQ, 8000 bits/MB, 10-bit 4:2:2,
// uncompressed PCM audio.
var (
	swsFlags = []string{"-sws_flags", "print_info+accurate_rnd+bitexact+full_chroma_int"}
	rescale  = []string{"-vf", "zscale=rangein=full:range=limited"}
	pixAudio = []string{"-pix_fmt", "yuv422p10le", "-c:a", "pcm_s24le"}
)

func codec(vendor string) []string {
	return []string{"-c:v", "prores_ks", "-profile:v", "3", "-vendor", vendor, "-bits_per_mb", "8000"}
}

// Args returns the encoder arguments for the profile, in the order they are
// passed to ffmpeg between the input and output paths.
func (p Profile) Args() []string {
	var args []string
	switch p {
	case BT709:
		args = append(args, swsFlags...)
		args = append(args, rescale...)
		args = append(args, codec("ap10")...)
		args = append(args,
			"-color_primaries", "bt709",
			"-color_trc", "bt709",
			"-color_range", "pc",
			"-colorspace", "bt709",
		)
	case BT2020:
		args = append(args, swsFlags...)
		args = append(args, rescale...)
		args = append(args, codec("apl0")...)
		args = append(args,
			"-color_primaries", "bt2020",
			"-color_trc", "arib-std-b67",
			"-color_range", "pc",
			"-colorspace", "bt2020nc",
		)
	default:
		args = append(args, codec("apl0")...)
	}
	return append(args, pixAudio...)
}
