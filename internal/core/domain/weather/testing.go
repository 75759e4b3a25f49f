package weather

import (
	"context"
	"sync"
)

type TestReporter struct {
	Result     Report
	Error      error
	ReportWith []string
	lock       sync.Mutex
}

func NewTestReporter() *TestReporter {
	return &TestReporter{}
}

func (r *TestReporter) Report(ctx context.Context, city string) (Report, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.ReportWith = append(r.ReportWith, city)
	if r.Error != nil {
		return Report{}, r.Error
	}
	return r.Result, nil
}
