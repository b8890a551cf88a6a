package take

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"coursebook/internal/question"
)

// RunPlain takes target with line-oriented prompts. It stops early when
// input ends or ctx is cancelled, returning the target as answered so far.
func RunPlain(ctx context.Context, in io.Reader, out io.Writer, target Target) (Target, error) {
	scanner := bufio.NewScanner(in)
	fmt.Fprintln(out, target.Title())
	for i := 0; i < target.Len(); i++ {
		if _, answered := target.Selection(i); answered {
			continue
		}
		q := target.Question(i)
		fmt.Fprintln(out)
		if target.Len() > 1 {
			fmt.Fprintf(out, "Question %d of %d\n", i+1, target.Len())
		}
		fmt.Fprintln(out, q.Prompt)
		for j, option := range q.Options {
			fmt.Fprintf(out, "  %s) %s\n", question.OptionLabel(j), option)
		}

		option, err := readChoice(ctx, scanner, out, len(q.Options))
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(out)
				fmt.Fprintf(out, "Stopped with %d of %d answered.\n", target.Result().Answered, target.Len())
				return target, nil
			}
			return target, err
		}
		target = target.Select(i, option)
		if q.IsCorrect(option) {
			fmt.Fprintln(out, "Correct.")
		} else {
			fmt.Fprintf(out, "Not quite. The answer is %s.\n", question.OptionLabel(q.Correct))
		}
		fmt.Fprintln(out, q.Explanation)
	}

	result := target.Result()
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Score: %s (%d%%)\n", result, result.Percent())
	return target, nil
}

// readChoice prompts until a valid option is entered.
func readChoice(ctx context.Context, scanner *bufio.Scanner, out io.Writer, optionCount int) (int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		fmt.Fprintf(out, "Answer [A-%s]: ", question.OptionLabel(optionCount-1))
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, fmt.Errorf("read answer: %w", err)
			}
			return 0, io.EOF
		}
		option, err := question.ParseChoice(strings.TrimSpace(scanner.Text()), optionCount)
		if err != nil {
			fmt.Fprintf(out, "%v\n", err)
			continue
		}
		return option, nil
	}
}
