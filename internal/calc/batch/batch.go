package batch

import (
	"fmt"

	coil "github.com/tucommenceapousser/coil-making/internal/calc/coil"
)

type CoilBatchInput struct {
	Items []coil.Input `json:"items"`
}

type CoilBatchResult struct {
	Results []coil.Result `json:"results"`
}

func CalculateCoil(in CoilBatchInput) (CoilBatchResult, error) {
	if len(in.Items) == 0 {
		return CoilBatchResult{}, fmt.Errorf("no items")
	}
	out := CoilBatchResult{Results: make([]coil.Result, 0, len(in.Items))}
	for _, item := range in.Items {
		res, err := coil.Calculate(item)
		if err != nil {
			return CoilBatchResult{}, err
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
