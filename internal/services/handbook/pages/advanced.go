package pages

// UseDebugValue is the page for labeling custom hooks in DevTools.
func UseDebugValue() *Page {
	return &Page{
		Name:    "useDebugValue",
		Heading: "useDebugValue Hook",
		Snippet: `import { useDebugValue, useEffect, useState } from "react";

function useOnlineStatus(): boolean {
  const [online, setOnline] = useState(navigator.onLine);

  useEffect(() => {
    const update = () => setOnline(navigator.onLine);
    window.addEventListener("online", update);
    window.addEventListener("offline", update);
    return () => {
      window.removeEventListener("online", update);
      window.removeEventListener("offline", update);
    };
  }, []);

  useDebugValue(online ? "Online" : "Offline");
  return online;
}

export default function StatusBar() {
  const online = useOnlineStatus();
  return <p>{online ? "Connected" : "Disconnected"}</p>;
}`,
		Paragraphs: []string{
			"useDebugValue attaches a label to a custom hook. React DevTools shows the label next to the hook when inspecting a component that uses it.",
			"It has no effect on rendering and is meant for hooks shared across a codebase, where a readable label saves opening the hook source.",
			"When the label is costly to build, pass a formatter as the second argument. DevTools only calls it while the component is being inspected.",
		},
	}
}

// UseImperativeHandle is the page for customizing exposed refs.
func UseImperativeHandle() *Page {
	return &Page{
		Name:    "useImperativeHandle",
		Heading: "useImperativeHandle Hook",
		Snippet: `import { forwardRef, useImperativeHandle, useRef } from "react";

type FancyInputHandle = { focus: () => void; clear: () => void };

const FancyInput = forwardRef<FancyInputHandle>(function FancyInput(_, ref) {
  const inputRef = useRef<HTMLInputElement | null>(null);

  useImperativeHandle(ref, () => ({
    focus: () => inputRef.current?.focus(),
    clear: () => {
      if (inputRef.current) inputRef.current.value = "";
    },
  }), []);

  return <input ref={inputRef} placeholder="Type here" />;
});

export default function Form() {
  const inputRef = useRef<FancyInputHandle | null>(null);

  return (
    <div>
      <FancyInput ref={inputRef} />
      <button onClick={() => inputRef.current?.focus()}>Focus</button>
      <button onClick={() => inputRef.current?.clear()}>Clear</button>
    </div>
  );
}`,
		Paragraphs: []string{
			"useImperativeHandle decides what a parent receives when it holds a ref to a child component. Instead of the raw DOM node, the parent gets the object the hook returns.",
			"That keeps the child in charge of its own DOM: the parent can call focus or clear but cannot restyle or remove the input behind its back.",
			"Most data should still flow through props. An imperative handle fits actions that have no natural prop form, such as focusing, scrolling or playing media.",
		},
	}
}

// UseID is the page for generated accessibility identifiers.
func UseID() *Page {
	return useIDPage(idDemo{})
}

func useIDPage(demo idDemo) *Page {
	return &Page{
		Name:    "useId",
		Heading: "useId Hook",
		Snippet: `import { useId } from "react";

export default function LoginForm() {
  const id = useId();

  return (
    <form>
      <label htmlFor={id + "-email"}>Email address</label>
      <input id={id + "-email"} type="email" />

      <label htmlFor={id + "-password"}>Password</label>
      <input id={id + "-password"} type="password" />
    </form>
  );
}`,
		Paragraphs: []string{
			"useId generates an identifier that is unique within the app and identical between the server render and hydration.",
			"Its job is wiring accessibility attributes such as htmlFor and aria-describedby. Rendering the same component twice yields two distinct ids, so labels never point at the wrong input.",
			"Do not use it for list keys. Keys should come from the data being rendered.",
		},
		Demo: demo,
	}
}
