package migrate

import (
	"fmt"
	"io"
)

// Result records the outcome of one write attempt.
type Result struct {
	Endpoint string
	Success  bool
	Error    string
}

// Report is the outcome of one migration run.
type Report struct {
	ImagesUploaded int
	Results        []Result
}

func (r *Report) Succeeded() []Result {
	return r.filter(true)
}

func (r *Report) Failed() []Result {
	return r.filter(false)
}

// OK reports whether every write succeeded.
func (r *Report) OK() bool {
	return len(r.Failed()) == 0
}

func (r *Report) filter(success bool) []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Success == success {
			out = append(out, res)
		}
	}
	return out
}

// Print writes the end-of-run summary.
func (r *Report) Print(w io.Writer) {
	succeeded := r.Succeeded()
	failed := r.Failed()

	fmt.Fprintln(w, "=== 移行結果サマリー ===")
	fmt.Fprintf(w, "成功: %d 件\n", len(succeeded))
	for _, res := range succeeded {
		fmt.Fprintf(w, "  [OK] %s\n", res.Endpoint)
	}

	if len(failed) > 0 {
		fmt.Fprintf(w, "\n失敗: %d 件\n", len(failed))
		for _, res := range failed {
			fmt.Fprintf(w, "  [NG] %s: %s\n", res.Endpoint, res.Error)
		}
		return
	}

	fmt.Fprintln(w, "\n移行が正常に完了しました。")
}
