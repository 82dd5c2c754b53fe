package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"

	"cpmdsk/cpm"
)

// formatFlags holds the mutually-exclusive --sssd/--combo override
// flags shared by every command that opens an existing image.
type formatFlags struct {
	sssd  bool
	combo bool
}

func (f *formatFlags) register(fset *pflag.FlagSet) {
	fset.BoolVar(&f.sssd, "sssd", false, "treat the image as SSSD geometry")
	fset.BoolVar(&f.combo, "combo", false, "treat the image as combo geometry")
}

func (f formatFlags) resolve(data []byte) (cpm.Format, error) {
	if f.sssd && f.combo {
		return cpm.FormatUnknown, errors.New("--sssd and --combo are mutually exclusive")
	}
	if f.sssd {
		return cpm.FormatSSSD, nil
	}
	if f.combo {
		return cpm.FormatCombo, nil
	}
	return cpm.Detect(data), nil
}

// readImage loads path's full contents from fs.
func readImage(path string) ([]byte, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return data, nil
}

// writeImage writes data back to path in a single call.
func writeImage(path string, data []byte) error {
	if err := afero.WriteFile(fs, path, data, 0644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}

// regionFor resolves the Container and the image's filesystem-region
// view for format.
func regionFor(format cpm.Format, image []byte) (cpm.Container, []byte) {
	c := cpm.ContainerFor(format)
	return c, c.Region(image)
}
