package pages

// UseState is the page for local component state.
func UseState() *Page {
	return &Page{
		Name:    "useState",
		Heading: "useState Hook",
		Snippet: `import { useState } from "react";

export default function Counter() {
  const [count, setCount] = useState<number>(0);

  return (
    <div>
      <p>Count: {count}</p>
      <button onClick={() => setCount(count + 1)}>Increase</button>
      <button onClick={() => setCount(count - 1)}>Decrease</button>
      <button onClick={() => setCount(0)}>Reset</button>
    </div>
  );
}`,
		Paragraphs: []string{
			"useState gives a function component a value that survives between renders. The call returns a pair: the current value and a setter.",
			"Calling the setter schedules a new render with the updated value. The variable itself never changes during a render, so reading it right after calling the setter still returns the old value.",
			"When the next value depends on the previous one, pass an updater function such as setCount(c => c + 1) so queued updates compose correctly.",
		},
	}
}

// UseEffect is the page for side effects, with a live fetch demo.
func UseEffect(deps Deps) *Page {
	return &Page{
		Name:    "useEffect",
		Heading: "useEffect Hook",
		Snippet: `import { useEffect, useState } from "react";

export default function Resources() {
  const [resource, setResource] = useState<string>("");
  const [data, setData] = useState<unknown[] | null>(null);

  useEffect(() => {
    if (!resource) return;
    setData(null);
    fetch("https://jsonplaceholder.typicode.com/" + resource + "?_limit=10")
      .then((response) => response.json())
      .then((json) => setData(json));
  }, [resource]);

  return (
    <div>
      <button onClick={() => setResource("users")}>Users</button>
      <button onClick={() => setResource("posts")}>Posts</button>
      <button onClick={() => setResource("comments")}>Comments</button>
      {data ? <pre>{JSON.stringify(data, null, 2)}</pre> : <p>No data to display.</p>}
    </div>
  );
}`,
		Paragraphs: []string{
			"useEffect runs code after React has committed a render to the screen. It is the place for work that reaches outside the component: fetching data, subscribing to events, timers, or touching the document title.",
			"The dependency array decides when the effect runs again. An empty array runs it once after mount; listing values reruns it whenever one of them changes; leaving the array out reruns it after every render.",
			"An effect may return a cleanup function. React calls it before the next run of the effect and when the component unmounts, which is where subscriptions are closed and timers cleared.",
			"The demo below loads users, posts and comments from the same public API the example uses. A resource that fails to load falls back to its own empty state.",
		},
		Demo: effectDemo{deps: deps},
	}
}

// UseRef is the page for mutable references.
func UseRef() *Page {
	return &Page{
		Name:    "useRef",
		Heading: "useRef Hook",
		Snippet: `import { useEffect, useRef, useState } from "react";

export default function Timer() {
  const inputRef = useRef<HTMLInputElement | null>(null);
  const timeoutRef = useRef<number | null>(null);
  const [message, setMessage] = useState("Waiting...");

  useEffect(() => {
    inputRef.current?.focus();
  }, []);

  const start = () => {
    setMessage("Timer started...");
    timeoutRef.current = window.setTimeout(() => setMessage("Time's up!"), 3000);
  };

  const cancel = () => {
    if (timeoutRef.current !== null) {
      clearTimeout(timeoutRef.current);
      timeoutRef.current = null;
      setMessage("Timer cancelled.");
    }
  };

  return (
    <div>
      <input ref={inputRef} placeholder="Focused on load" />
      <p>{message}</p>
      <button onClick={start}>Start</button>
      <button onClick={cancel}>Cancel</button>
    </div>
  );
}`,
		Paragraphs: []string{
			"useRef returns a mutable object whose current property persists for the whole lifetime of the component. Writing to it does not trigger a render.",
			"The common uses are holding a DOM node passed through the ref attribute, and keeping values such as timer ids or previous props that the rendered output does not depend on.",
			"Prefer state for anything shown on screen: a ref changes silently, so the view only catches up on the next render caused by something else.",
		},
	}
}

// UseLayoutEffect is the page for effects that run before paint.
func UseLayoutEffect() *Page {
	return &Page{
		Name:    "useLayoutEffect",
		Heading: "When to use useLayoutEffect",
		Snippet: `import { useLayoutEffect, useRef, useState } from "react";

export default function MeasuredBox() {
  const boxRef = useRef<HTMLDivElement | null>(null);
  const [color, setColor] = useState("lightgray");

  useLayoutEffect(() => {
    if (!boxRef.current) return;
    const height = boxRef.current.getBoundingClientRect().height;
    setColor(height > 100 ? "lightgreen" : "lightblue");
  }, []);

  return (
    <div ref={boxRef} style={{ backgroundColor: color, minHeight: "150px" }}>
      Colored before the browser paints.
    </div>
  );
}`,
		Paragraphs: []string{
			"useLayoutEffect has the same signature as useEffect but runs synchronously after React updates the DOM and before the browser paints.",
			"That timing lets a component measure layout and apply a correction in the same frame, so the user never sees the intermediate state. With useEffect the first paint happens first and the correction shows up as a flicker.",
			"Because it blocks painting, keep it for measurement and layout fixes. Everything else belongs in useEffect.",
		},
	}
}
