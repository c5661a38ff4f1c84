package app

import "context"

func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	graph, err := s.loadGraph(ctx, req.Workspace)
	if err != nil {
		return ValidateResult{}, err
	}
	return ValidateResult{TargetCount: graph.Len()}, nil
}
