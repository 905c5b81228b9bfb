package locale

import "sync"

// Provider holds the active locale and notifies subscribers when it changes.
type Provider struct {
	mu          sync.Mutex
	current     Locale
	nextID      int
	subscribers map[int]func(Locale)
}

func NewProvider(initial Locale) *Provider {

	return &Provider{
		current:     Parse(string(initial)),
		subscribers: map[int]func(Locale){},
	}
}

func (p *Provider) Current() Locale {

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.current
}

// Subscribe registers fn for locale changes. The returned func removes it.
func (p *Provider) Subscribe(fn func(Locale)) (cancel func()) {

	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.subscribers[id] = fn
	p.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			p.mu.Lock()
			delete(p.subscribers, id)
			p.mu.Unlock()
		})
	}
}

// Set switches the locale. Subscribers run synchronously, outside the lock, and only
// when the normalized locale differs from the current one.
func (p *Provider) Set(l Locale) bool {

	l = Parse(string(l))

	p.mu.Lock()
	if l == p.current {
		p.mu.Unlock()
		return false
	}

	p.current = l
	subscribers := make([]func(Locale), 0, len(p.subscribers))
	for _, fn := range p.subscribers {
		subscribers = append(subscribers, fn)
	}
	p.mu.Unlock()

	for _, fn := range subscribers {
		fn(l)
	}

	return true
}
