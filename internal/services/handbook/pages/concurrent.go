package pages

// UseTransition is the page for non-urgent state updates.
func UseTransition() *Page {
	return &Page{
		Name:    "useTransition",
		Heading: "useTransition Hook",
		Snippet: `import { useState, useTransition } from "react";

const items = Array.from({ length: 20000 }, (_, i) => "Item " + i);

export default function Filter() {
  const [query, setQuery] = useState("");
  const [filtered, setFiltered] = useState(items);
  const [isPending, startTransition] = useTransition();

  const onChange = (value: string) => {
    setQuery(value);
    startTransition(() => {
      setFiltered(items.filter((item) => item.includes(value)));
    });
  };

  return (
    <div>
      <input value={query} onChange={(e) => onChange(e.target.value)} />
      {isPending && <p>Updating list...</p>}
      <ul>
        {filtered.map((item) => (
          <li key={item}>{item}</li>
        ))}
      </ul>
    </div>
  );
}`,
		Paragraphs: []string{
			"useTransition marks a state update as non-urgent. React keeps urgent updates such as typing responsive and renders the transition in the background, abandoning it if newer input arrives.",
			"The hook returns isPending, which is true while the transition is still rendering, and startTransition, which wraps the updates to defer.",
			"Only state updates go inside startTransition. The input value itself stays an ordinary update so the field never lags behind the keyboard.",
		},
	}
}

// UseDeferredValue is the page for lagging copies of a value.
func UseDeferredValue() *Page {
	return &Page{
		Name:    "useDeferredValue",
		Heading: "useDeferredValue Hook",
		Snippet: `import { memo, useDeferredValue, useState } from "react";

const SlowList = memo(function SlowList({ text }: { text: string }) {
  const rows = [];
  for (let i = 0; i < 250; i++) {
    rows.push(<li key={i}>{text} #{i}</li>);
  }
  return <ul>{rows}</ul>;
});

export default function Search() {
  const [text, setText] = useState("");
  const deferredText = useDeferredValue(text);
  const stale = text !== deferredText;

  return (
    <div>
      <input value={text} onChange={(e) => setText(e.target.value)} />
      <div style={{ opacity: stale ? 0.5 : 1 }}>
        <SlowList text={deferredText} />
      </div>
    </div>
  );
}`,
		Paragraphs: []string{
			"useDeferredValue returns a copy of a value that is allowed to lag behind. During urgent renders React keeps the old copy and updates it in a background render afterwards.",
			"It suits cases where the expensive consumer receives the value as a prop and the code that sets the value is out of reach, so startTransition cannot be used.",
			"Comparing the live value with the deferred one tells the component that the slow part is stale, which is a good moment to dim it.",
		},
	}
}
