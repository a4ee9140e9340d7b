package main

import (
	"encoding/json"
	"errors"

	"pushpay/config"
	"pushpay/internal/adapter/http/dto"
	"pushpay/internal/core/domain"
	"pushpay/internal/service"

	"github.com/spf13/cobra"
)

func tokenCmd(load func() (*config.Config, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token [identity]",
		Short: "Issue a bearer token for an identity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			if cfg.JWT.Secret == "" {
				return errors.New("jwt.secret is required (PUSHPAY_JWT_SECRET)")
			}

			tokens := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
			token, expiry, err := tokens.Generate(domain.Identity(args[0]))
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(dto.TokenResponse{Token: token, Expiry: expiry.Unix()})
		},
	}
	return cmd
}
