package main

import (
	"fmt"
	"path"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/stakewire/stakewire/core"
	stakewireconfig "github.com/stakewire/stakewire/internal/configs/stakewire"
	"github.com/stakewire/stakewire/internal/utils"
	"github.com/stakewire/stakewire/staking/registry"
	"github.com/stakewire/stakewire/staking/store"
	staking "github.com/stakewire/stakewire/staking/types"
)

const ledgerDBName = "takedb"

var config stakewireconfig.StakewireConfig

var rootCmd = &cobra.Command{
	Use:               "takectl",
	Short:             "Manage delegate takes in the stakewire ledger",
	PersistentPreRunE: setupConfig,
	SilenceUsage:      true,
}

func init() {
	pflags := rootCmd.PersistentFlags()
	pflags.String("config", "", "path to a stakewire toml config file")
	pflags.String("data-dir", "", "directory holding the take ledger database")
	pflags.Uint16("min-take", 0, "global minimum take numerator (over 65535)")
	viper.BindPFlag("config", pflags.Lookup("config"))
	viper.BindPFlag("data-dir", pflags.Lookup("data-dir"))
	viper.SetEnvPrefix("STAKEWIRE")
	viper.AutomaticEnv()

	rootCmd.AddCommand(registerCmd, getTakeCmd, decreaseTakeCmd)
}

func setupConfig(cmd *cobra.Command, args []string) error {
	config = stakewireconfig.DefaultConfig()
	if file := viper.GetString("config"); file != "" {
		var err error
		config, err = stakewireconfig.LoadConfig(file)
		if err != nil {
			return errors.Wrapf(err, "failed to load config %s", file)
		}
	}
	if dir := viper.GetString("data-dir"); dir != "" {
		config.General.DataDir = dir
	}
	if cmd.Flags().Changed("min-take") {
		minTake, err := cmd.Flags().GetUint16("min-take")
		if err != nil {
			return err
		}
		config.Staking.MinDelegateTake = minTake
	}

	utils.SetLogVerbosity(zerolog.Level(config.Log.Verbosity))
	if config.Log.Folder != "" {
		if err := utils.AddLogFileWithDir(
			config.Log.Folder, config.Log.FileName, config.Log.RotateSize, 5, 30,
		); err != nil {
			return errors.Wrap(err, "failed to set up log file")
		}
	}
	return nil
}

var registerCmd = &cobra.Command{
	Use:   "register <hotkey> <coldkey>",
	Short: "Register a delegate hotkey under its controlling coldkey",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		hotkey, err := parseAddr(args[0])
		if err != nil {
			return err
		}
		coldkey, err := parseAddr(args[1])
		if err != nil {
			return err
		}
		st, err := openLedgerStore()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := registry.New(st).Register(hotkey, coldkey); err != nil {
			return err
		}
		fmt.Printf("registered: hotkey %s owned by coldkey %s\n", hotkey.Hex(), coldkey.Hex())
		return nil
	},
}

var getTakeCmd = &cobra.Command{
	Use:   "get-take <hotkey>",
	Short: "Print the take currently charged by a delegate hotkey",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hotkey, err := parseAddr(args[0])
		if err != nil {
			return err
		}
		st, err := openLedgerStore()
		if err != nil {
			return err
		}
		defer st.Close()

		take, ok, err := st.GetDelegateTake(hotkey)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Printf("hotkey %s has no take set\n", hotkey.Hex())
			return nil
		}
		fmt.Printf("hotkey %s takes %s\n", hotkey.Hex(), take)
		return nil
	},
}

var decreaseTakeCmd = &cobra.Command{
	Use:   "decrease-take <coldkey> <hotkey> <take>",
	Short: "Lower the take a delegate hotkey charges, never below the global minimum",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		coldkey, err := parseAddr(args[0])
		if err != nil {
			return err
		}
		hotkey, err := parseAddr(args[1])
		if err != nil {
			return err
		}
		takeNum, err := strconv.ParseUint(args[2], 10, 16)
		if err != nil {
			return errors.Wrapf(err, "%q is not a valid take numerator", args[2])
		}
		st, err := openLedgerStore()
		if err != nil {
			return err
		}
		defer st.Close()

		sink := core.NewFeedSink()
		ch := make(chan staking.TakeDecreasedEvent, 1)
		sub := sink.SubscribeTakeDecreased(ch)
		defer sub.Unsubscribe()

		mutator := core.NewTakeMutator(st, registry.New(st), config, sink)
		if err := mutator.DecreaseTake(&staking.DecreaseTake{
			Coldkey: coldkey,
			Hotkey:  hotkey,
			Take:    staking.Take(takeNum),
		}); err != nil {
			return err
		}

		ev := <-ch
		fmt.Printf("take decreased: hotkey %s now takes %s\n", ev.Hotkey.Hex(), ev.Take)
		return nil
	},
}

func openLedgerStore() (*store.LvlDBStore, error) {
	return store.NewLvlDBStore(path.Join(config.General.DataDir, ledgerDBName))
}

func parseAddr(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, errors.Errorf("%q is not a valid hex address", s)
	}
	return common.HexToAddress(s), nil
}
