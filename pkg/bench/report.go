// Copyright 2024 The Solaris Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bench

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/ghodss/yaml"
	"github.com/solarisdb/splaymemo/golibs/ulidutils"
)

// Report is the result of one benchmark run
type Report struct {
	RunID     string          `json:"runId"`
	Started   time.Time       `json:"started"`
	Fibonacci []FibResult     `json:"fibonacci,omitempty"`
	RangeSum  *RangeSumResult `json:"rangeSum,omitempty"`
}

// NewReport returns the empty report with the new run ID
func NewReport() *Report {
	id := ulidutils.NewID()
	started, _ := ulidutils.Time(id)
	return &Report{RunID: id, Started: started}
}

// WriteTable writes the report in the human-readable form
func (r *Report) WriteTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintf(tw, "run %s started %s\n", r.RunID, r.Started.Format(time.RFC3339))
	if len(r.Fibonacci) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "n\tLRU Cache Time (s)\tSplay Tree Time (s)\trotations\tsplay hits\tdigits")
		for _, f := range r.Fibonacci {
			fmt.Fprintf(tw, "%d\t%.6f\t%.6f\t%s\t%s\t%d\n", f.N, f.LRU.Seconds(), f.Splay.Seconds(),
				humanize.Comma(int64(f.Rotations)), humanize.Comma(int64(f.SplayStats.Hits)), f.Digits)
		}
	}
	if rs := r.RangeSum; rs != nil {
		fmt.Fprintln(tw)
		fmt.Fprintf(tw, "range sums over %s elements, %s queries\n", humanize.Comma(int64(rs.Size)), humanize.Comma(int64(rs.Queries)))
		fmt.Fprintf(tw, "without cache\t%.2f s\n", rs.NoCache.Seconds())
		fmt.Fprintf(tw, "with LRU cache\t%.2f s\thits %s\tmisses %s\n", rs.Cached.Seconds(),
			humanize.Comma(int64(rs.Hits)), humanize.Comma(int64(rs.Misses)))
	}
	return tw.Flush()
}

// WriteYAML writes the report as YAML
func (r *Report) WriteYAML(w io.Writer) error {
	buf, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("could not marshal the report: %w", err)
	}
	_, err = w.Write(buf)
	return err
}
