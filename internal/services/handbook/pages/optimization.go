package pages

// UseMemo is the page for cached computations, with a memoized demo value.
func UseMemo() *Page {
	return useMemoPage(newMemoDemo(expensiveCalculation))
}

func useMemoPage(demo memoDemo) *Page {
	return &Page{
		Name:    "useMemo",
		Heading: "useMemo Hook",
		Snippet: `import { useMemo, useState } from "react";

export default function Expensive() {
  const [count, setCount] = useState(0);
  const [text, setText] = useState("");

  const result = useMemo(() => {
    let total = 0;
    for (let i = 0; i < 1_000_000_000; i++) total += 1;
    return total + count;
  }, [count]);

  return (
    <div>
      <button onClick={() => setCount(count + 1)}>Increment</button>
      <input value={text} onChange={(e) => setText(e.target.value)} />
      <p>Expensive calculation result: {result}</p>
    </div>
  );
}`,
		Paragraphs: []string{
			"useMemo caches the result of a calculation between renders. React calls the function on the first render and then returns the stored value until one of the listed dependencies changes.",
			"In the example, typing into the text field renders the component again but leaves count untouched, so the slow loop is skipped and the cached total is returned immediately.",
			"useMemo computes a value during render. Work that has to happen after render, like fetching or subscribing, belongs in useEffect instead.",
		},
		Demo: demo,
	}
}

// UseCallback is the page for stable function identities.
func UseCallback() *Page {
	return &Page{
		Name:    "useCallback",
		Heading: "useCallback Hook",
		Snippet: `import { memo, useCallback, useState } from "react";

const Child = memo(function Child({ onClick }: { onClick: () => void }) {
  console.log("Child rendered");
  return <button onClick={onClick}>Increment from child</button>;
});

export default function Parent() {
  const [count, setCount] = useState(0);
  const [dark, setDark] = useState(false);

  const increment = useCallback(() => setCount((c) => c + 1), []);

  return (
    <div className={dark ? "dark" : ""}>
      <p>Count: {count}</p>
      <Child onClick={increment} />
      <button onClick={() => setDark((d) => !d)}>Toggle theme</button>
    </div>
  );
}`,
		Paragraphs: []string{
			"Every render creates new function objects. useCallback returns the same function instance across renders until one of its dependencies changes.",
			"That stability matters when the function is passed to a child wrapped in memo or used as an effect dependency. A fresh function would make memo see a changed prop and rerender the child each time.",
			"useCallback(fn, deps) is equivalent to useMemo(() => fn, deps). It only pays off when something downstream compares the function by identity.",
		},
	}
}

// UseReducer is the page for reducer-driven state.
func UseReducer() *Page {
	return &Page{
		Name:    "useReducer",
		Heading: "useReducer Hook",
		Snippet: `import { useReducer } from "react";

type State = { count: number };
type Action = { type: "increment" } | { type: "decrement" } | { type: "reset" };

function reducer(state: State, action: Action): State {
  switch (action.type) {
    case "increment":
      return { count: state.count + 1 };
    case "decrement":
      return { count: state.count - 1 };
    case "reset":
      return { count: 0 };
  }
}

export default function Counter() {
  const [state, dispatch] = useReducer(reducer, { count: 0 });

  return (
    <div>
      <p>Count: {state.count}</p>
      <button onClick={() => dispatch({ type: "increment" })}>+</button>
      <button onClick={() => dispatch({ type: "decrement" })}>-</button>
      <button onClick={() => dispatch({ type: "reset" })}>Reset</button>
    </div>
  );
}`,
		Paragraphs: []string{
			"useReducer moves state transitions into a pure function that receives the current state and an action and returns the next state.",
			"Components dispatch actions that describe what happened instead of computing the next value inline. The transitions then live in one place and can be tested without rendering anything.",
			"Reach for it when several values change together or when the next state depends on the previous one in more than a trivial way.",
		},
	}
}
