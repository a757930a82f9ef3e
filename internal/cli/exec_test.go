package cli_test

import (
	"testing"

	"github.com/calvinalkan/sarray/internal/cli"
)

func Test_Exec_Runs_Script_From_Stdin_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	script := `# descending, then sorted
ramp 3 -1
show
sort
show
or 9 42
`

	stdout, stderr, exitCode := c.RunWithInput(script, "-n", "3", "exec")

	if got, want := exitCode, 0; got != want {
		t.Errorf("exitCode=%d, want=%d\nstderr: %s", got, want, stderr)
	}

	if got, want := stdout, "[3 2 1]\n[1 2 3]\n42\n"; got != want {
		t.Errorf("stdout=%q, want=%q", got, want)
	}
}

func Test_Exec_Stops_At_Contract_Violation_When_Get_Out_Of_Range(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	script := "set 0 7\nget 0\nget 5\nget 0\n"

	stdout, stderr, exitCode := c.RunWithInput(script, "-n", "2", "exec")

	if got, want := exitCode, 1; got != want {
		t.Errorf("exitCode=%d, want=%d", got, want)
	}

	if got, want := stdout, "7\n"; got != want {
		t.Errorf("stdout=%q, want=%q", got, want)
	}

	cli.AssertContains(t, stderr, "line 3")
	cli.AssertContains(t, stderr, "contract violation")
	cli.AssertContains(t, stderr, "index 5, len 2")
}

func Test_Exec_Reads_File_When_File_Flag_Given(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile("script.sarr", "fill 4\nusort desc\nshow\nlen\n")

	stdout := c.MustRun("--len", "2", "exec", "-f", "script.sarr")

	if got, want := stdout, "[4 4]\n2"; got != want {
		t.Errorf("stdout=%q, want=%q", got, want)
	}
}

func Test_Exec_Fails_When_File_Missing(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stderr := c.MustFail("exec", "--file", "nope.sarr")

	cli.AssertContains(t, stderr, "opening script")
}

func Test_Exec_Fails_When_Command_Unknown(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	_, stderr, exitCode := c.RunWithInput("len\nexplode\n", "exec")

	if got, want := exitCode, 1; got != want {
		t.Errorf("exitCode=%d, want=%d", got, want)
	}

	cli.AssertContains(t, stderr, "line 2: unknown command: explode")
}
