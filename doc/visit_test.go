package doc

import (
	"errors"
	"testing"
)

func TestVisitReplace(t *testing.T) {
	root, err := ParseString("a${x}b")
	if err != nil {
		t.Fatal(err)
	}

	err = Visit(root, func(n *Node) (Action, Fragment, error) {
		if n.Kind == KindDirective {
			return Replace, NewText("X"), nil
		}

		return Continue, nil, nil
	})
	if err != nil {
		t.Fatal(err)
	}

	if got := Render(root); got != "aXb" {
		t.Errorf("Render = %q, want aXb", got)
	}
}

func TestVisitStopDescent(t *testing.T) {
	root, err := ParseString("${inner}")
	if err != nil {
		t.Fatal(err)
	}

	var visited []Kind

	err = Visit(root, func(n *Node) (Action, Fragment, error) {
		visited = append(visited, n.Kind)

		if n.Kind == KindDirective {
			return StopDescent, nil, nil
		}

		return Continue, nil, nil
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(visited) != 1 || visited[0] != KindDirective {
		t.Errorf("visited = %v, want directive only", visited)
	}

	if got := Render(root); got != "${inner}" {
		t.Errorf("Render = %q, unmodified tree expected", got)
	}
}

func TestVisitPreOrder(t *testing.T) {
	root, err := ParseString("a${x}b${y}c")
	if err != nil {
		t.Fatal(err)
	}

	var order []string

	err = Visit(root, func(n *Node) (Action, Fragment, error) {
		if n.Kind == KindText {
			order = append(order, n.Text)
		}

		return Continue, nil, nil
	})
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"a", "x", "b", "y", "c"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}

	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, order[i], want[i])
		}
	}
}

func TestVisitError(t *testing.T) {
	root, err := ParseString("a${x}b")
	if err != nil {
		t.Fatal(err)
	}

	boom := errors.New("boom")

	err = Visit(root, func(n *Node) (Action, Fragment, error) {
		if n.Kind == KindDirective {
			return Continue, nil, boom
		}

		return Continue, nil, nil
	})

	if !errors.Is(err, boom) {
		t.Errorf("Visit error = %v, want boom", err)
	}
}

func TestFind(t *testing.T) {
	root, err := ParseString("a[[${x}]]b")
	if err != nil {
		t.Fatal(err)
	}

	ref := Find(root, func(n *Node) bool { return n.Kind == KindReference })
	if ref == nil {
		t.Fatal("reference not found")
	}

	if none := Find(root, func(n *Node) bool {
		return n.Kind == KindEscape
	}); none != nil {
		t.Errorf("Find matched %v, want nil", none.Kind)
	}
}

func TestSplice(t *testing.T) {
	root, err := ParseString("a${x}b")
	if err != nil {
		t.Fatal(err)
	}

	target := Find(root, func(n *Node) bool { return n.Kind == KindDirective })
	if target == nil {
		t.Fatal("directive not found")
	}

	if !Splice(root, target, NewText("42")) {
		t.Fatal("Splice did not find the target")
	}

	if got := Render(root); got != "a42b" {
		t.Errorf("Render = %q, want a42b", got)
	}

	// A second splice of the same (now detached) target finds nothing.
	if Splice(root, target, NewText("!")) {
		t.Error("Splice matched a detached node")
	}
}
