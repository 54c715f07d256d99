// Command tradectl is the operator tool for the auto-trading backend: it
// provisions the encryption key, links broker accounts, and manages formulas
// and trade records against the local database.
package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	sqliteadapter "github.com/gajawadaamaresh18/Auto-trading--sub001/internal/adapter/driven/sqlite"
	"github.com/gajawadaamaresh18/Auto-trading--sub001/internal/application"
	"github.com/gajawadaamaresh18/Auto-trading--sub001/internal/config"
	"github.com/gajawadaamaresh18/Auto-trading--sub001/internal/domain/model"
	"github.com/gajawadaamaresh18/Auto-trading--sub001/internal/secrets"
)

const usage = `Usage: tradectl <command> [flags]

Commands:
  genkey                                 print a fresh base64 encryption key
  user     -email <addr>                 create a user
  link     -user <id> -broker <name> [-live] -creds <json>
                                         link a broker account
  creds    <account-id>                  print decrypted broker credentials
  accounts -user <id>                    list a user's broker accounts
  relink   -account <id> -creds <json>   replace broker credentials
  unlink   <account-id>                  remove a broker account
  formula  -user <id> -name <s> -symbol <s> -signal <s> -timeframe <s> -mode <s> -qty <f>
                                         create a formula (starts disabled)
  formulas -user <id>                    list a user's formulas
  enable   <formula-id>                  enable a formula
  disable  <formula-id>                  disable a formula
  record   -formula <id> -side <s> -qty <f> -price <f>
                                         record a pending trade
  trades   -formula <id>                 list a formula's trades
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	// genkey must work before any configuration exists.
	if os.Args[1] == "genkey" {
		key, err := secrets.GenerateKey()
		if err != nil {
			slog.Error("generate key", "error", err)
			os.Exit(1)
		}
		fmt.Println(base64.StdEncoding.EncodeToString(key))
		return
	}

	if err := run(os.Args[1], os.Args[2:]); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run(command string, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	cipher, err := secrets.NewCipher(cfg.SecretKey)
	if err != nil {
		return err
	}
	slog.Info("config loaded",
		"db_path", cfg.DBPath,
		"broker_endpoint", cfg.BrokerEndpoint,
		"sync_interval", cfg.SyncInterval,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sqliteadapter.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	if err := sqliteadapter.RunMigrations(db.Writer); err != nil {
		return err
	}

	users := sqliteadapter.NewUserRepo(db)
	brokerSvc := application.NewBrokerAccountService(sqliteadapter.NewBrokerAccountRepo(db), cipher, slog.Default())
	formulaRepo := sqliteadapter.NewFormulaRepo(db)
	formulaSvc := application.NewFormulaService(formulaRepo)
	tradeSvc := application.NewTradeService(sqliteadapter.NewTradeRepo(db), formulaRepo)

	switch command {
	case "user":
		fs := flag.NewFlagSet("user", flag.ExitOnError)
		email := fs.String("email", "", "user email address")
		fs.Parse(args)
		if *email == "" {
			return fmt.Errorf("user: -email is required")
		}
		user, err := users.Create(ctx, *email)
		if err != nil {
			return err
		}
		fmt.Println(user.ID)
		return nil

	case "link":
		fs := flag.NewFlagSet("link", flag.ExitOnError)
		userID := fs.Int64("user", 0, "owning user id")
		broker := fs.String("broker", "", "broker name")
		live := fs.Bool("live", false, "link as a live (non-paper) account")
		credsJSON := fs.String("creds", "", "credential payload as a JSON object")
		fs.Parse(args)
		creds, err := parseCreds(*credsJSON)
		if err != nil {
			return err
		}
		acct, err := brokerSvc.Link(ctx, *userID, *broker, !*live, creds)
		if err != nil {
			return err
		}
		fmt.Println(acct.ID)
		return nil

	case "creds":
		if len(args) != 1 {
			return fmt.Errorf("creds: expected exactly one account id")
		}
		creds, err := brokerSvc.Credentials(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(creds)

	case "accounts":
		fs := flag.NewFlagSet("accounts", flag.ExitOnError)
		userID := fs.Int64("user", 0, "owning user id")
		fs.Parse(args)
		accounts, err := brokerSvc.ListByUser(ctx, *userID)
		if err != nil {
			return err
		}
		for _, acct := range accounts {
			mode := "live"
			if acct.Paper {
				mode = "paper"
			}
			fmt.Printf("%s\t%s\t%s\n", acct.ID, acct.Broker, mode)
		}
		return nil

	case "relink":
		fs := flag.NewFlagSet("relink", flag.ExitOnError)
		accountID := fs.String("account", "", "broker account id")
		credsJSON := fs.String("creds", "", "credential payload as a JSON object")
		fs.Parse(args)
		creds, err := parseCreds(*credsJSON)
		if err != nil {
			return err
		}
		return brokerSvc.Relink(ctx, *accountID, creds)

	case "unlink":
		if len(args) != 1 {
			return fmt.Errorf("unlink: expected exactly one account id")
		}
		return brokerSvc.Unlink(ctx, args[0])

	case "formula":
		fs := flag.NewFlagSet("formula", flag.ExitOnError)
		userID := fs.Int64("user", 0, "owning user id")
		name := fs.String("name", "", "formula name")
		symbol := fs.String("symbol", "", "instrument symbol")
		signal := fs.String("signal", "", "signal: buy, sell, or hold")
		timeframe := fs.String("timeframe", "", "timeframe: 1m, 5m, 15m, 1h, 4h, or 1d")
		mode := fs.String("mode", string(model.ExecutionModePaper), "execution mode: paper or live")
		qty := fs.Float64("qty", 0, "order quantity")
		fs.Parse(args)
		f, err := formulaSvc.Create(ctx, *userID, *name, *symbol,
			model.Signal(*signal), model.Timeframe(*timeframe), model.ExecutionMode(*mode), *qty)
		if err != nil {
			return err
		}
		fmt.Println(f.ID)
		return nil

	case "formulas":
		fs := flag.NewFlagSet("formulas", flag.ExitOnError)
		userID := fs.Int64("user", 0, "owning user id")
		fs.Parse(args)
		formulas, err := formulaSvc.ListByUser(ctx, *userID)
		if err != nil {
			return err
		}
		for _, f := range formulas {
			state := "disabled"
			if f.Enabled {
				state = "enabled"
			}
			fmt.Printf("%s\t%s\t%s\t%s/%s\t%s\n", f.ID, f.Name, f.Symbol, f.Signal, f.Timeframe, state)
		}
		return nil

	case "enable", "disable":
		if len(args) != 1 {
			return fmt.Errorf("%s: expected exactly one formula id", command)
		}
		return formulaSvc.SetEnabled(ctx, args[0], command == "enable")

	case "record":
		fs := flag.NewFlagSet("record", flag.ExitOnError)
		formulaID := fs.String("formula", "", "formula id")
		side := fs.String("side", "", "trade side: buy or sell")
		qty := fs.Float64("qty", 0, "trade quantity")
		price := fs.Float64("price", 0, "execution price")
		fs.Parse(args)
		trade, err := tradeSvc.Record(ctx, *formulaID, model.TradeSide(*side), *qty, *price)
		if err != nil {
			return err
		}
		fmt.Println(trade.ID)
		return nil

	case "trades":
		fs := flag.NewFlagSet("trades", flag.ExitOnError)
		formulaID := fs.String("formula", "", "formula id")
		fs.Parse(args)
		trades, err := tradeSvc.ListByFormula(ctx, *formulaID)
		if err != nil {
			return err
		}
		for _, trade := range trades {
			fmt.Printf("%s\t%s\t%s\t%g @ %g\t%s\n",
				trade.ID, trade.ExecutedAt.Format("2006-01-02 15:04:05"), trade.Side,
				trade.Quantity, trade.Price, trade.Status)
		}
		return nil

	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func parseCreds(raw string) (map[string]any, error) {
	if raw == "" {
		return nil, fmt.Errorf("-creds is required")
	}
	var creds map[string]any
	if err := json.Unmarshal([]byte(raw), &creds); err != nil {
		return nil, fmt.Errorf("-creds must be a JSON object: %w", err)
	}
	return creds, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
