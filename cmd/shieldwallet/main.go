// Command shieldwallet is the command-line driver for the shielded ledger
// wallet: account creation, balance queries, UTXO listing, and transfers in
// authenticated or permissionless mode.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/shieldorg/libshield-go/field"
	"github.com/shieldorg/libshield-go/history"
	"github.com/shieldorg/libshield-go/ledger"
	"github.com/shieldorg/libshield-go/prover"
	"github.com/shieldorg/libshield-go/wallet"
)

func main() {
	app := &cli.App{
		Name:  "shieldwallet",
		Usage: "wallet for the shielded UTXO ledger",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "api-url",
				Usage:   "ledger JSON-RPC endpoint",
				EnvVars: []string{"SHIELD_API_URL"},
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Usage:   "per-call RPC timeout",
				EnvVars: []string{"SHIELD_RPC_TIMEOUT"},
			},
			&cli.StringFlag{
				Name:    "prover-bin",
				Usage:   "path to the proving binary",
				Value:   "shield-prover",
				EnvVars: []string{"SHIELD_PROVER_BIN"},
			},
			&cli.StringFlag{
				Name:    "history-db",
				Usage:   "optional path to the local transfer history database",
				EnvVars: []string{"SHIELD_HISTORY_DB"},
			},
		},
		Commands: []*cli.Command{
			createCommand(),
			balanceCommand(),
			listUTXOsCommand(),
			transferCommand(false),
			transferCommand(true),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newWallet builds the pipeline from the CLI context.
func newWallet(c *cli.Context) (*wallet.Wallet, func(), error) {
	cfg, err := ledger.ResolveConfig(
		&ledger.Config{URL: c.String("api-url"), Timeout: c.Duration("timeout")},
		envMap(),
	)
	if err != nil {
		return nil, nil, err
	}

	w := wallet.New(ledger.NewRPCClient(*cfg), prover.NewExecProver(c.String("prover-bin")))
	w.Logf = func(format string, args ...any) {
		fmt.Printf(format+"\n", args...)
	}

	cleanup := func() {}
	if path := c.String("history-db"); path != "" {
		store, err := history.Open(path)
		if err != nil {
			return nil, nil, err
		}
		w.History = store
		cleanup = func() { _ = store.Close() }
	}
	return w, cleanup, nil
}

// envMap exposes the process environment to ledger.ResolveConfig.
func envMap() map[string]string {
	return map[string]string{
		"SHIELD_API_URL":     os.Getenv("SHIELD_API_URL"),
		"SHIELD_RPC_TIMEOUT": os.Getenv("SHIELD_RPC_TIMEOUT"),
	}
}

func createCommand() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "create a wallet account (random secret, or deterministic from a passphrase)",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "passphrase", Usage: "derive the secret from a passphrase instead of randomness"},
			&cli.StringFlag{Name: "salt", Usage: "salt for passphrase derivation"},
		},
		Action: func(c *cli.Context) error {
			fmt.Println("Creating new wallet account...")
			prv := prover.NewExecProver(c.String("prover-bin"))

			var (
				acc *wallet.Account
				err error
			)
			if pass := c.String("passphrase"); pass != "" {
				acc, err = wallet.AccountFromPassphrase(c.Context, prv, pass, c.String("salt"))
			} else {
				acc, err = wallet.NewAccount(c.Context, prv)
			}
			if err != nil {
				return err
			}
			fmt.Printf("Secret:  %s\n", field.EncodeHex(&acc.Secret))
			fmt.Printf("Account: %s\n", field.EncodeHex(&acc.Address))
			return nil
		},
	}
}

func balanceCommand() *cli.Command {
	return &cli.Command{
		Name:  "balance",
		Usage: "query an account's balance",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "account", Usage: "hex-encoded account address", Required: true},
		},
		Action: func(c *cli.Context) error {
			account, err := field.DecodeHex(c.String("account"))
			if err != nil {
				return err
			}
			w, cleanup, err := newWallet(c)
			if err != nil {
				return err
			}
			defer cleanup()

			balance, err := w.Balance(c.Context, account)
			if err != nil {
				return err
			}
			fmt.Printf("Balance: %s (%s)\n", balance.String(), field.EncodeHex(&balance))
			return nil
		},
	}
}

func listUTXOsCommand() *cli.Command {
	return &cli.Command{
		Name:  "list-utxos",
		Usage: "list an account's unspent outputs",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "account", Usage: "hex-encoded account address", Required: true},
		},
		Action: func(c *cli.Context) error {
			account, err := field.DecodeHex(c.String("account"))
			if err != nil {
				return err
			}
			w, cleanup, err := newWallet(c)
			if err != nil {
				return err
			}
			defer cleanup()

			outs, err := w.ListUTXOs(c.Context, account)
			if err != nil {
				return err
			}
			for i := range outs {
				fmt.Printf("UTXO #%d: amount=%s\n", i+1, outs[i].Amount.String())
			}
			fmt.Printf("\nTotal UTXOs found: %d\n", len(outs))
			return nil
		},
	}
}

// transferCommand builds the transfer subcommand; permissionless mode drops
// the secret flag and relies on the prover's own attestation.
func transferCommand(permissionless bool) *cli.Command {
	name := "transfer"
	usage := "send an authenticated transfer"
	if permissionless {
		name = "transfer-permissionless"
		usage = "send a transfer without presenting a spending secret"
	}

	flags := []cli.Flag{
		&cli.StringFlag{Name: "from", Usage: "hex-encoded sender address", Required: true},
		&cli.StringFlag{Name: "to", Usage: "hex-encoded destination address", Required: true},
		&cli.StringFlag{Name: "amount", Usage: "hex-encoded amount", Required: true},
	}
	if !permissionless {
		flags = append(flags, &cli.StringFlag{Name: "secret", Usage: "hex-encoded spending secret", Required: true})
	}

	return &cli.Command{
		Name:  name,
		Usage: usage,
		Flags: flags,
		Action: func(c *cli.Context) error {
			opts, err := parseTransferOpts(c, permissionless)
			if err != nil {
				return err
			}
			w, cleanup, err := newWallet(c)
			if err != nil {
				return err
			}
			defer cleanup()

			fmt.Println("Preparing transfer...")
			res, err := w.Transfer(c.Context, *opts)
			if errors.Is(err, wallet.ErrInsufficientFunds) {
				// Expected outcome, not a fault: report and exit cleanly.
				fmt.Println("Insufficient balance: no covering set of at most two UTXOs")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Printf("Submitted at %s\n", time.Now().UTC().Format(time.RFC3339))
			fmt.Printf("Transaction hash: %s\n", field.EncodeHex(&res.TxHash))
			return nil
		},
	}
}

func parseTransferOpts(c *cli.Context, permissionless bool) (*wallet.TransferOpts, error) {
	from, err := field.DecodeHex(c.String("from"))
	if err != nil {
		return nil, fmt.Errorf("--from: %w", err)
	}
	to, err := field.DecodeHex(c.String("to"))
	if err != nil {
		return nil, fmt.Errorf("--to: %w", err)
	}
	amount, err := field.DecodeHex(c.String("amount"))
	if err != nil {
		return nil, fmt.Errorf("--amount: %w", err)
	}

	opts := &wallet.TransferOpts{From: from, To: to, Amount: amount}
	if !permissionless {
		secret, err := field.DecodeHex(c.String("secret"))
		if err != nil {
			return nil, fmt.Errorf("--secret: %w", err)
		}
		opts.Secret = &secret
	}
	return opts, nil
}
