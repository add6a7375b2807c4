package stats

import (
	"errors"

	"VDOStats/internal/pkg/logger"
)

// Assay gathers the requested statistic sets for each device and
// collects the results into one bundle per device.
//
// Devices are sampled in input order and each bundle holds its samples
// in requested-set order, so the output is deterministic. The failure
// policy depends on how the devices were chosen:
//
//   - mustValidate (explicit devices): a device that is not a volume
//     aborts the run with InvalidDeviceError, and any other fetch
//     failure aborts it with StatFetchError. No partial results.
//   - auto-discovered: a device that fails for any reason has its
//     bundle dropped entirely and the remaining devices are still
//     sampled.
func Assay(f Fetcher, sets []SetType, devices []string, mustValidate bool) ([]DeviceSampleBundle, error) {
	bundles := make([]DeviceSampleBundle, 0, len(devices))

nextDevice:
	for _, device := range devices {
		samples := make([]Sample, 0, len(sets))
		for _, set := range sets {
			record, err := f.Fetch(device, set)
			if err != nil {
				if mustValidate {
					var nv *NotVolumeError
					if errors.As(err, &nv) {
						return nil, &InvalidDeviceError{Device: device}
					}
					var fe *StatFetchError
					if errors.As(err, &fe) {
						return nil, fe
					}
					return nil, &StatFetchError{Device: device, Set: set, Err: err}
				}
				// Auto-discovered device vanished or misbehaved between
				// enumeration and sampling; drop it and move on.
				logger.Debug("dropping device after failed fetch",
					logger.String("device", device),
					logger.String("set", set.String()),
					logger.String("error", err.Error()))
				continue nextDevice
			}
			samples = append(samples, Sample{Device: device, Set: set, Record: record})
		}
		bundles = append(bundles, DeviceSampleBundle{Device: device, Samples: samples})
	}

	return bundles, nil
}
