package main

import (
	"encoding/json"

	"pushpay/internal/adapter/http/dto"
	"pushpay/internal/core/domain"
	"pushpay/internal/core/fee"
	"pushpay/pkg/apperror"

	"github.com/spf13/cobra"
)

type splitOutput struct {
	fee.Breakdown
	FeeRatePercent string `json:"fee_rate_percent"`
}

func splitCmd() *cobra.Command {
	var (
		amount uint64
		rate   uint32
	)
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Show how a payment would be split between merchant and beneficiaries",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := domain.FeeConfiguration{RateBasisPoints: rate}
			if !cfg.Valid() {
				return apperror.ErrFeeRateTooHigh(rate, domain.MaxFeeRateBasisPoints)
			}

			out := splitOutput{
				Breakdown:      fee.Calculate(amount, rate),
				FeeRatePercent: dto.NewFeeRateResponse(rate).FeeRatePercent,
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
	cmd.Flags().Uint64VarP(&amount, "amount", "a", 0, "payment amount in the smallest unit")
	cmd.Flags().Uint32VarP(&rate, "rate", "r", 200, "fee rate in basis points")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}
