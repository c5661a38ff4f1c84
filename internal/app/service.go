package app

import (
	"time"

	"buildgraph/internal/adapters"
	"buildgraph/internal/ports"
)

type Service struct {
	Declarations ports.DeclarationSourcePort
	Workspace    ports.WorkspacePort
	Sources      ports.SourceExpanderPort
	OutputReader ports.OutputReaderPort
	Clock        func() time.Time
}

func NewService() Service {
	return Service{
		Declarations: adapters.NewBuildFileAdapter(),
		Workspace:    adapters.NewWorkspaceAdapter(),
		Sources:      adapters.NewSourceGlobAdapter(),
		OutputReader: adapters.NewOutputReaderAdapter(),
		Clock:        time.Now,
	}
}

func timeNow(clock func() time.Time) time.Time {
	if clock == nil {
		return time.Now()
	}
	return clock()
}
