package launch

import (
	"fmt"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testEmulator = Emulator{Program: "qemu-system-aarch64", Machine: "virt"}

func TestBuildDefaults(t *testing.T) {
	cfg, err := Resolve([]string{"myos.bin"}, DefaultDefaults())
	require.NoError(t, err)

	cmd := Build(cfg, testEmulator)
	assert.Equal(t, Command{
		"qemu-system-aarch64", "-M", "virt",
		"-m", "512M",
		"-cpu", "cortex-a53",
		"-smp", "cores=1",
		"-nographic",
		"-kernel", "myos.bin",
	}, cmd)
}

func TestBuildAllOptions(t *testing.T) {
	cfg, err := Resolve([]string{"myos.bin", "-debug", "-cores", "4", "-graphics", "-dtb", "board.dtb"}, DefaultDefaults())
	require.NoError(t, err)

	cmd := Build(cfg, testEmulator)
	assert.Equal(t, Command{
		"qemu-system-aarch64", "-M", "virt",
		"-m", "512M",
		"-cpu", "cortex-a53",
		"-smp", "cores=4",
		"-s", "-S",
		"-dtb", "board.dtb",
		"-kernel", "myos.bin",
	}, cmd)
}

// allCombinations covers every on/off mix of the conditional options.
func allCombinations() []LaunchConfig {
	var out []LaunchConfig
	for _, graphics := range []bool{false, true} {
		for _, debug := range []bool{false, true} {
			for _, dtb := range []string{"", "board.dtb"} {
				out = append(out, LaunchConfig{
					Image:    "kernel.img",
					Debug:    debug,
					MemSize:  "1G",
					CPU:      "cortex-a57",
					Cores:    2,
					Graphics: graphics,
					DTB:      dtb,
				})
			}
		}
	}
	return out
}

func TestBuildConditionalTokens(t *testing.T) {
	for _, cfg := range allCombinations() {
		name := fmt.Sprintf("graphics=%t,debug=%t,dtb=%q", cfg.Graphics, cfg.Debug, cfg.DTB)
		t.Run(name, func(t *testing.T) {
			cmd := Build(cfg, testEmulator)

			// -kernel <image> is always the final pair
			require.GreaterOrEqual(t, len(cmd), 2)
			assert.Equal(t, []string{"-kernel", "kernel.img"}, []string(cmd[len(cmd)-2:]))

			assert.Equal(t, lo.Ternary(cfg.Graphics, 0, 1), lo.Count(cmd, "-nographic"))

			if cfg.Debug {
				assert.Equal(t, 1, lo.Count(cmd, "-s"))
				assert.Equal(t, 1, lo.Count(cmd, "-S"))
				idx := lo.IndexOf(cmd, "-s")
				assert.Equal(t, "-S", cmd[idx+1])
			} else {
				assert.NotContains(t, cmd, "-s")
				assert.NotContains(t, cmd, "-S")
			}

			if cfg.DTB != "" {
				idx := lo.IndexOf(cmd, "-dtb")
				require.GreaterOrEqual(t, idx, 0)
				assert.Equal(t, cfg.DTB, cmd[idx+1])
			} else {
				assert.NotContains(t, cmd, "-dtb")
			}

			assert.Equal(t, Command{"qemu-system-aarch64", "-M", "virt", "-m", "1G", "-cpu", "cortex-a57", "-smp", "cores=2"}, cmd[:9])
		})
	}
}

func TestBuildDeterministic(t *testing.T) {
	for _, cfg := range allCombinations() {
		first := Build(cfg, testEmulator)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, Build(cfg, testEmulator))
		}
	}
}

func TestBuildUsesEmulator(t *testing.T) {
	cmd := Build(LaunchConfig{Image: "a.bin", MemSize: "512M", CPU: "cortex-a53", Cores: 1},
		Emulator{Program: "/opt/qemu/bin/qemu-system-aarch64", Machine: "virt-9.0"})

	assert.Equal(t, "/opt/qemu/bin/qemu-system-aarch64", cmd.Program())
	assert.Equal(t, []string{"-M", "virt-9.0"}, cmd.Args()[:2])
}

func TestCommandString(t *testing.T) {
	tests := []struct {
		name     string
		cmd      Command
		expected string
	}{
		{
			name:     "plain tokens",
			cmd:      Command{"qemu-system-aarch64", "-smp", "cores=1", "-kernel", "myos.bin"},
			expected: "qemu-system-aarch64 -smp cores=1 -kernel myos.bin",
		},
		{
			name:     "path with space is quoted",
			cmd:      Command{"qemu-system-aarch64", "-kernel", "my os.bin"},
			expected: "qemu-system-aarch64 -kernel 'my os.bin'",
		},
		{
			name:     "empty command",
			cmd:      Command{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cmd.String())
		})
	}
}

func TestCommandAccessors(t *testing.T) {
	assert.Equal(t, "", Command{}.Program())
	assert.Nil(t, Command{}.Args())
	assert.Nil(t, Command{"qemu"}.Args())
	assert.Equal(t, []string{"-M", "virt"}, Command{"qemu", "-M", "virt"}.Args())
}
