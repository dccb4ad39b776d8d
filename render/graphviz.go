package render

import (
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Formats that the Graphviz dot command can produce for us.
var supportedFormats = map[string]bool{
	"png": true,
	"svg": true,
	"pdf": true,
}

func IsSupportedFormat(format string) bool {
	return supportedFormats[format]
}

// Graphviz shells out to the dot command to render dotFile in the given
// format. The output is written next to dotFile with the format as its
// extension, and its path is returned.
func Graphviz(dotFile, format string) (string, error) {
	if !IsSupportedFormat(format) {
		return "", errors.Errorf("unsupported output format: %q", format)
	}

	dot, err := exec.LookPath("dot")
	if err != nil {
		return "", errors.Wrap(err, "graphviz dot command not found")
	}

	output := strings.TrimSuffix(dotFile, ".dot") + "." + format
	cmd := exec.Command(dot, "-T"+format, "-o", output, dotFile)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	glog.Infof("Running: %v", cmd.Args)
	start := time.Now()
	if err := cmd.Run(); err != nil {
		return "", errors.Wrapf(err, "rendering %v", dotFile)
	}

	glog.V(1).Infof("Finished rendering %v (took %v)", output, time.Since(start))
	return output, nil
}
