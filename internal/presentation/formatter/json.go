package formatter

import (
	"io"

	"github.com/bytedance/sonic"
	"github.com/penwyp/go-gh-heat/internal/core/model"
)

type JSONFormatter struct {
	out io.Writer
}

func NewJSONFormatter(out io.Writer) *JSONFormatter {
	return &JSONFormatter{out: out}
}

func (f *JSONFormatter) Format(report Report) error {
	if report.Days == nil {
		report.Days = []model.DayCount{}
	}
	data, err := sonic.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = f.out.Write(data)
	return err
}
