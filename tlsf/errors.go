package tlsf

import "errors"

var (
	// ErrAlignment indicates an alignment log2 outside [0, MaxAlignLog2].
	ErrAlignment = errors.New("tlsf: unsupported alignment")

	// ErrSecondLevel indicates a second-level log2 outside [1, MaxSLILog2].
	ErrSecondLevel = errors.New("tlsf: unsupported second-level subdivision count")

	// ErrMaxBlock indicates the maximum block size is below the linear-region threshold.
	ErrMaxBlock = errors.New("tlsf: max block size below threshold")

	// ErrUnknownPreset indicates a preset name that Preset does not recognise.
	ErrUnknownPreset = errors.New("tlsf: unknown preset")

	// ErrInvariant is wrapped by every violation Verify reports.
	ErrInvariant = errors.New("tlsf: mapping invariant violated")
)
